package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/types"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// ConnectionHandler handles connection routes
type ConnectionHandler struct {
	DB *gorm.DB
}

// CreateConnections handles POST /api/connections. The body is a single
// connection object or an array of them.
// @Summary Create connections
// @Description Create one or more directed connections between assets; journals Link on both endpoints
// @Tags Connections
// @Accept json
// @Produce json
// @Param body body services.ConnectionInput true "Connection(s) to create"
// @Success 201 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /connections [post]
func (h *ConnectionHandler) CreateConnections(c *fiber.Ctx) error {
	var body types.FlexList[services.ConnectionInput]
	if err := body.UnmarshalJSON(c.Body()); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "connection.validation.input")
	}

	connections, err := services.CreateConnections(h.DB, body.Slice())
	if err != nil {
		return serviceError(c, err, "Connection not found", "Failed to create connection", "createConnections")
	}

	result := make([]map[string]interface{}, 0, len(connections))
	for i := range connections {
		result = append(result, connections[i].ToMap())
	}

	return utils.CreatedResponse(c, result)
}

// ListConnections handles GET /api/connections?asset_id=...
// @Summary List connections
// @Tags Connections
// @Produce json
// @Param asset_id query string false "Connections touching this asset on either end"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /connections [get]
func (h *ConnectionHandler) ListConnections(c *fiber.Ctx) error {
	connections, err := services.ListConnections(h.DB, c.Query("asset_id"))
	if err != nil {
		return serviceError(c, err, "Connection not found", "Failed to fetch connections", "listConnections")
	}

	result := make([]map[string]interface{}, 0, len(connections))
	for i := range connections {
		result = append(result, connections[i].ToMap())
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetConnection handles GET /api/connections/:id
func (h *ConnectionHandler) GetConnection(c *fiber.Ctx) error {
	id := c.Params("id")

	connection, err := services.GetConnection(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Connection '%s' not found", id), "Failed to fetch connection", "getConnection")
	}

	return utils.SuccessResponse(c, connection.ToMap(), fiber.StatusOK)
}

// DeleteConnection handles DELETE /api/connections/:id
// @Summary Delete a connection
// @Description Delete a connection; journals Unlink on both endpoints
// @Tags Connections
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /connections/{id} [delete]
func (h *ConnectionHandler) DeleteConnection(c *fiber.Ctx) error {
	id := c.Params("id")

	affected, err := services.DeleteConnection(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Connection '%s' not found", id), "Failed to delete connection", "deleteConnection")
	}

	return utils.DeletedResponse(c, affected)
}
