// memos.go
//
// Memo routes. Each mutation returns the full updated project so the client
// can re-render its memo panel without a second fetch.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// MemoHandler handles memo routes
type MemoHandler struct {
	DB *gorm.DB
}

// CreateMemo handles POST /api/projects/:id/memos
// @Summary Create a memo
// @Tags Memos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.MemoInput true "Memo content"
// @Success 201 {object} project.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/memos [post]
func (h *MemoHandler) CreateMemo(c *fiber.Ctx) error {
	var body services.MemoInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "memo.validation.input")
	}

	updated, err := services.CreateMemo(h.DB, c.Params("id"), body, actor(c))
	if err != nil {
		return serviceError(c, err, "createMemo")
	}

	return c.Status(fiber.StatusCreated).JSON(updated)
}

// UpdateMemo handles PUT /api/projects/:id/memos/:memoId
// @Summary Update a memo
// @Tags Memos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param memoId path string true "Memo ID"
// @Param body body services.MemoInput true "Memo content"
// @Success 200 {object} project.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/memos/{memoId} [put]
func (h *MemoHandler) UpdateMemo(c *fiber.Ctx) error {
	var body services.MemoInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "memo.validation.input")
	}

	updated, err := services.UpdateMemo(h.DB, c.Params("id"), c.Params("memoId"), body, actor(c))
	if err != nil {
		return serviceError(c, err, "updateMemo")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteMemo handles DELETE /api/projects/:id/memos/:memoId
// @Summary Delete a memo
// @Tags Memos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param memoId path string true "Memo ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/memos/{memoId} [delete]
func (h *MemoHandler) DeleteMemo(c *fiber.Ctx) error {
	updated, err := services.DeleteMemo(h.DB, c.Params("id"), c.Params("memoId"), actor(c))
	if err != nil {
		return serviceError(c, err, "deleteMemo")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
