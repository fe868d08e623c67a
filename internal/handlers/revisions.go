// revisions.go
//
// Revision ledger routes. Entries are addressed by their stable id; deleting
// one never renumbers the survivors.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// RevisionHandler handles revision ledger routes
type RevisionHandler struct {
	DB *gorm.DB
}

// AddRevision handles POST /api/projects/:id/revisions
// @Summary Append a revision
// @Description Append a quote revision numbered by the current ledger length
// @Tags Revisions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.RevisionInput true "Amount and optional note"
// @Success 201 {object} project.Revision
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/revisions [post]
func (h *RevisionHandler) AddRevision(c *fiber.Ctx) error {
	var body services.RevisionInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "revision.validation.input")
	}

	rev, err := services.AddRevision(h.DB, c.Params("id"), body, actor(c))
	if err != nil {
		return serviceError(c, err, "addRevision")
	}

	return c.Status(fiber.StatusCreated).JSON(rev)
}

// EditRevision handles PUT /api/projects/:id/revisions/:revId
// @Summary Edit a revision in place
// @Description Point-edit an existing revision without changing its number
// @Tags Revisions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param revId path string true "Revision ID"
// @Param body body services.EditRevisionInput true "Fields to change"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/revisions/{revId} [put]
func (h *RevisionHandler) EditRevision(c *fiber.Ctx) error {
	var body services.EditRevisionInput
	if err := decodeBody(c, &body); err != nil {
		return serviceError(c, err, "revision.validation.input")
	}

	if err := services.EditRevision(h.DB, c.Params("id"), c.Params("revId"), body, actor(c)); err != nil {
		return serviceError(c, err, "editRevision")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"revisionId": c.Params("revId")})
}

// DeleteRevision handles DELETE /api/projects/:id/revisions/:revId
// @Summary Delete a revision
// @Description Remove one revision; remaining entries keep their numbers
// @Tags Revisions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param revId path string true "Revision ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/revisions/{revId} [delete]
func (h *RevisionHandler) DeleteRevision(c *fiber.Ctx) error {
	if err := services.DeleteRevision(h.DB, c.Params("id"), c.Params("revId"), actor(c)); err != nil {
		return serviceError(c, err, "deleteRevision")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"revisionId": c.Params("revId")})
}
