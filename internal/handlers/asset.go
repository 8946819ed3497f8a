package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// AssetHandler handles asset routes
type AssetHandler struct {
	DB *gorm.DB
}

// CreateAsset handles POST /api/assets
// @Summary Create an asset
// @Description Create an asset, optionally placed in a room; journals a Create action
// @Tags Assets
// @Accept json
// @Produce json
// @Param body body services.AssetInput true "Asset to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *fiber.Ctx) error {
	var input services.AssetInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "asset.validation.input")
	}

	asset, err := services.CreateAsset(h.DB, input)
	if err != nil {
		return serviceError(c, err, "Asset not found", "Failed to create asset", "createAsset")
	}

	return utils.CreatedResponse(c, asset.ToMap(false))
}

// ListAssets handles GET /api/assets?room_id=...&status=...
// @Summary List assets
// @Tags Assets
// @Produce json
// @Param room_id query string false "Scope to one room"
// @Param status query string false "Filter by status"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *fiber.Ctx) error {
	assets, err := services.ListAssets(h.DB, c.Query("room_id"), c.Query("status"))
	if err != nil {
		return serviceError(c, err, "Asset not found", "Failed to fetch assets", "listAssets")
	}

	result := make([]map[string]interface{}, 0, len(assets))
	for i := range assets {
		result = append(result, assets[i].ToMap(false))
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetAsset handles GET /api/assets/:id?include_connections=true
// @Summary Get an asset
// @Description Get one asset; include_connections embeds its outgoing and incoming connections
// @Tags Assets
// @Produce json
// @Param id path string true "Asset ID"
// @Param include_connections query bool false "Embed connections"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *fiber.Ctx) error {
	id := c.Params("id")
	includeConnections := c.QueryBool("include_connections")

	asset, err := services.GetAsset(h.DB, id, includeConnections)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Asset '%s' not found", id), "Failed to fetch asset", "getAsset")
	}

	return utils.SuccessResponse(c, asset.ToMap(includeConnections), fiber.StatusOK)
}

// UpdateAsset handles PUT /api/assets/:id
// @Summary Update an asset
// @Description Partially update an asset; journals Update, or Replace/Delete on the matching status transitions
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param body body services.AssetUpdateInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	id := c.Params("id")

	var input services.AssetUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "asset.validation.input")
	}

	asset, err := services.UpdateAsset(h.DB, id, input)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Asset '%s' not found", id), "Failed to update asset", "updateAsset")
	}

	return utils.SuccessResponse(c, asset.ToMap(false), fiber.StatusOK)
}

// DeleteAsset handles DELETE /api/assets/:id
// @Summary Delete an asset
// @Description Delete an asset with its connections and journal rows; room door references are nulled
// @Tags Assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *fiber.Ctx) error {
	id := c.Params("id")

	affected, err := services.DeleteAsset(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Asset '%s' not found", id), "Failed to delete asset", "deleteAsset")
	}

	return utils.DeletedResponse(c, affected)
}
