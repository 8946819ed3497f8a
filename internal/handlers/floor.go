package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// FloorHandler handles floor routes
type FloorHandler struct {
	DB *gorm.DB
}

// CreateFloor handles POST /api/floors
func (h *FloorHandler) CreateFloor(c *fiber.Ctx) error {
	var input services.FloorInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "floor.validation.input")
	}

	floor, err := services.CreateFloor(h.DB, input)
	if err != nil {
		return serviceError(c, err, "Floor not found", "Failed to create floor", "createFloor")
	}

	return utils.CreatedResponse(c, floor.ToMap())
}

// ListFloors handles GET /api/floors?building_id=...
func (h *FloorHandler) ListFloors(c *fiber.Ctx) error {
	floors, err := services.ListFloors(h.DB, c.Query("building_id"))
	if err != nil {
		return serviceError(c, err, "Floor not found", "Failed to fetch floors", "listFloors")
	}

	result := make([]map[string]interface{}, 0, len(floors))
	for i := range floors {
		result = append(result, floors[i].ToMap())
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetFloor handles GET /api/floors/:id
func (h *FloorHandler) GetFloor(c *fiber.Ctx) error {
	id := c.Params("id")

	floor, err := services.GetFloor(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Floor '%s' not found", id), "Failed to fetch floor", "getFloor")
	}

	result := floor.ToMap()
	rooms := make([]map[string]interface{}, 0, len(floor.Rooms))
	for i := range floor.Rooms {
		rooms = append(rooms, floor.Rooms[i].ToMap())
	}
	result["rooms"] = rooms

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// UpdateFloor handles PUT /api/floors/:id
func (h *FloorHandler) UpdateFloor(c *fiber.Ctx) error {
	id := c.Params("id")

	var input services.FloorUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "floor.validation.input")
	}

	floor, err := services.UpdateFloor(h.DB, id, input)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Floor '%s' not found", id), "Failed to update floor", "updateFloor")
	}

	return utils.SuccessResponse(c, floor.ToMap(), fiber.StatusOK)
}

// DeleteFloor handles DELETE /api/floors/:id
func (h *FloorHandler) DeleteFloor(c *fiber.Ctx) error {
	id := c.Params("id")

	affected, err := services.DeleteFloor(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Floor '%s' not found", id), "Failed to delete floor", "deleteFloor")
	}

	return utils.DeletedResponse(c, affected)
}
