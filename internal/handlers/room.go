package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// RoomHandler handles room routes
type RoomHandler struct {
	DB *gorm.DB
}

// CreateRoom handles POST /api/rooms
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var input services.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "room.validation.input")
	}

	room, err := services.CreateRoom(h.DB, input)
	if err != nil {
		return serviceError(c, err, "Room not found", "Failed to create room", "createRoom")
	}

	return utils.CreatedResponse(c, room.ToMap())
}

// ListRooms handles GET /api/rooms?floor_id=...
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := services.ListRooms(h.DB, c.Query("floor_id"))
	if err != nil {
		return serviceError(c, err, "Room not found", "Failed to fetch rooms", "listRooms")
	}

	result := make([]map[string]interface{}, 0, len(rooms))
	for i := range rooms {
		result = append(result, rooms[i].ToMap())
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetRoom handles GET /api/rooms/:id
func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	room, err := services.GetRoom(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Room '%s' not found", id), "Failed to fetch room", "getRoom")
	}

	result := room.ToMap()
	assets := make([]map[string]interface{}, 0, len(room.Assets))
	for i := range room.Assets {
		assets = append(assets, room.Assets[i].ToMap(false))
	}
	result["assets"] = assets

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// UpdateRoom handles PUT /api/rooms/:id
func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	var input services.RoomUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "room.validation.input")
	}

	room, err := services.UpdateRoom(h.DB, id, input)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Room '%s' not found", id), "Failed to update room", "updateRoom")
	}

	return utils.SuccessResponse(c, room.ToMap(), fiber.StatusOK)
}

// DeleteRoom handles DELETE /api/rooms/:id
func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	affected, err := services.DeleteRoom(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Room '%s' not found", id), "Failed to delete room", "deleteRoom")
	}

	return utils.DeletedResponse(c, affected)
}
