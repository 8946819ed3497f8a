package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/types"
	"github.com/speccs/assetdb/internal/utils"
)

// serviceError translates a service error into the response envelope.
// Validation errors surface their message with a client status; unknown
// errors are logged server-side and reported with the generic message only.
func serviceError(c *fiber.Ctx, err error, notFoundMessage, serverMessage, errorType string) error {
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		return utils.ErrorResponse(c, customErr.Message, customErr.Code, customErr.Type)
	}
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage)
	}
	log.Printf("%s: %v", errorType, err)
	return utils.ErrorResponse(c, serverMessage, fiber.StatusInternalServerError, errorType)
}
