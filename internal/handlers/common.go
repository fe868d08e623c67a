// common.go
//
// Shared handler helpers: service error mapping and body decoding.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/importer"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
)

// serviceError maps service errors onto the uniform error envelope.
func serviceError(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrValidation), errors.Is(err, importer.ErrMalformed):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType)
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}

// decodeBody strict-decodes the request body, rejecting unknown fields.
func decodeBody(c *fiber.Ctx, out interface{}) error {
	return services.DecodeStrict(c.Body(), out)
}

// actor returns the requester identity set by the ActorID middleware.
func actor(c *fiber.Ctx) string {
	if v, ok := c.Locals("actorId").(string); ok {
		return v
	}
	return ""
}
