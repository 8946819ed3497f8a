package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// BuildingHandler handles building routes
type BuildingHandler struct {
	DB *gorm.DB
}

// CreateBuilding handles POST /api/buildings
// @Summary Create a building
// @Tags Buildings
// @Accept json
// @Produce json
// @Param body body services.BuildingInput true "Building to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /buildings [post]
func (h *BuildingHandler) CreateBuilding(c *fiber.Ctx) error {
	var input services.BuildingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "building.validation.input")
	}

	building, err := services.CreateBuilding(h.DB, input)
	if err != nil {
		return serviceError(c, err, "Building not found", "Failed to create building", "createBuilding")
	}

	return utils.CreatedResponse(c, building.ToMap())
}

// ListBuildings handles GET /api/buildings?property_id=...
// @Summary List buildings
// @Tags Buildings
// @Produce json
// @Param property_id query string false "Scope to one property"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /buildings [get]
func (h *BuildingHandler) ListBuildings(c *fiber.Ctx) error {
	buildings, err := services.ListBuildings(h.DB, c.Query("property_id"))
	if err != nil {
		return serviceError(c, err, "Building not found", "Failed to fetch buildings", "listBuildings")
	}

	result := make([]map[string]interface{}, 0, len(buildings))
	for i := range buildings {
		result = append(result, buildings[i].ToMap())
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetBuilding handles GET /api/buildings/:id
// @Summary Get a building
// @Tags Buildings
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *fiber.Ctx) error {
	id := c.Params("id")

	building, err := services.GetBuilding(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Building '%s' not found", id), "Failed to fetch building", "getBuilding")
	}

	result := building.ToMap()
	floors := make([]map[string]interface{}, 0, len(building.Floors))
	for i := range building.Floors {
		floors = append(floors, building.Floors[i].ToMap())
	}
	result["floors"] = floors

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// UpdateBuilding handles PUT /api/buildings/:id
// @Summary Update a building
// @Tags Buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param body body services.BuildingUpdateInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id} [put]
func (h *BuildingHandler) UpdateBuilding(c *fiber.Ctx) error {
	id := c.Params("id")

	var input services.BuildingUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "building.validation.input")
	}

	building, err := services.UpdateBuilding(h.DB, id, input)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Building '%s' not found", id), "Failed to update building", "updateBuilding")
	}

	return utils.SuccessResponse(c, building.ToMap(), fiber.StatusOK)
}

// DeleteBuilding handles DELETE /api/buildings/:id
// @Summary Delete a building
// @Description Delete a building and every descendant floor, room, and asset
// @Tags Buildings
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id} [delete]
func (h *BuildingHandler) DeleteBuilding(c *fiber.Ctx) error {
	id := c.Params("id")

	affected, err := services.DeleteBuilding(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Building '%s' not found", id), "Failed to delete building", "deleteBuilding")
	}

	return utils.DeletedResponse(c, affected)
}
