package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// PropertyHandler handles property routes
type PropertyHandler struct {
	DB *gorm.DB
}

// CreateProperty handles POST /api/properties
// @Summary Create a property
// @Description Create a new property with a required name and optional address
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body services.PropertyInput true "Property to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var input services.PropertyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Property name is required", fiber.StatusBadRequest, "property.validation.input")
	}

	property, err := services.CreateProperty(h.DB, input)
	if err != nil {
		return serviceError(c, err, "Property not found", "Failed to create property", "createProperty")
	}

	return utils.CreatedResponse(c, property.ToMap())
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Description Get every property in storage
// @Tags Properties
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := services.ListProperties(h.DB)
	if err != nil {
		return serviceError(c, err, "Property not found", "Failed to fetch properties", "listProperties")
	}

	result := make([]map[string]interface{}, 0, len(properties))
	for i := range properties {
		result = append(result, properties[i].ToMap())
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetProperty handles GET /api/properties/:id
// @Summary Get a property
// @Description Get one property with its buildings embedded
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	property, err := services.GetProperty(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Property '%s' not found", id), "Failed to fetch property", "getProperty")
	}

	result := property.ToMap()
	buildings := make([]map[string]interface{}, 0, len(property.Buildings))
	for i := range property.Buildings {
		buildings = append(buildings, property.Buildings[i].ToMap())
	}
	result["buildings"] = buildings

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update a property
// @Description Partially update a property's name or address
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body services.PropertyUpdateInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	var input services.PropertyUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "property.validation.input")
	}

	property, err := services.UpdateProperty(h.DB, id, input)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Property '%s' not found", id), "Failed to update property", "updateProperty")
	}

	return utils.SuccessResponse(c, property.ToMap(), fiber.StatusOK)
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete a property
// @Description Delete a property and every descendant building, floor, room, and asset
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	affected, err := services.DeleteProperty(h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Property '%s' not found", id), "Failed to delete property", "deleteProperty")
	}

	return utils.DeletedResponse(c, affected)
}
