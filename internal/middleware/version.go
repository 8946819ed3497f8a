package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion is advertised on every /api response
const APIVersion = "1.0.0"

// VersionMiddleware stamps the API version header on responses
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Api-Version", APIVersion)
		return c.Next()
	}
}
