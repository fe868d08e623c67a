// progress.go
//
// Status pipeline and milestone progress routes.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// ProgressHandler handles status and milestone routes
type ProgressHandler struct {
	DB *gorm.DB
}

// SetStatus handles PUT /api/projects/:id/status
// @Summary Set project status
// @Description Set the pipeline status (legacy values normalized) and auto-stamp the implied milestone
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body object true "Status value"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/status [put]
func (h *ProgressHandler) SetStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "status.validation.input")
	}

	updated, err := services.SetStatus(h.DB, c.Params("id"), body.Status, actor(c))
	if err != nil {
		return serviceError(c, err, "setStatus")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   updated.Status,
		"progress": updated.Progress,
	})
}

// ToggleProgress handles PUT /api/projects/:id/progress
// @Summary Toggle a milestone
// @Description Toggle one milestone stamp: done clears, open stamps with now
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body object true "Stage key"
// @Success 200 {object} project.Progress
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/progress [put]
func (h *ProgressHandler) ToggleProgress(c *fiber.Ctx) error {
	var body struct {
		Stage string `json:"stage"`
	}
	if err := c.BodyParser(&body); err != nil || body.Stage == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "progress.validation.input")
	}

	progress, err := services.ToggleProgress(h.DB, c.Params("id"), body.Stage, actor(c))
	if err != nil {
		return serviceError(c, err, "toggleProgress")
	}

	return c.Status(fiber.StatusOK).JSON(progress)
}
