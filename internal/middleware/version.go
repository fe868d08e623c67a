package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// defaultAPIVersion is assumed when a client sends no X-Api-Version header,
// which is what the legacy estimate-tool frontends do.
const defaultAPIVersion = "1.0.0"

// VersionMiddleware reads the X-Api-Version header into the request context
// so handlers can branch on it if a breaking change ever needs one.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", defaultAPIVersion)

		// short form alias
		if version == "1.0" {
			version = defaultAPIVersion
		}

		c.Locals("apiVersion", version)

		return c.Next()
	}
}
