package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/types"
)

// APIKey validates the static x-api-key header against the configured secret.
// An empty configured key disables the check, preserving the open-by-default
// behavior of single-office deployments.
func APIKey(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		header := c.Get("x-api-key")
		if header != "" && subtle.ConstantTimeCompare([]byte(header), []byte(secret)) == 1 {
			return c.Next()
		}

		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Unauthorized",
			Type:    "auth.apikey",
		}
	}
}

// ActorID extracts the opaque actor identifier used for audit fields and
// stores it in the request context. Missing is fine; audit fields stay empty.
func ActorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if actor := c.Get("x-actor-id"); actor != "" {
			c.Locals("actorId", actor)
		}
		return c.Next()
	}
}
