// backup.go
//
// Snapshot backup and restore routes. The JSON restore only accepts an
// array: anything else is rejected before a single row is written. The
// spreadsheet restore takes a multipart xlsx upload.

package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/importer"
	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// BackupHandler handles backup and restore routes
type BackupHandler struct {
	DB *gorm.DB
}

// Backup handles GET /api/backup/projects
// @Summary Download the full snapshot
// @Description Every project in canonical form, suitable for a later restore
// @Tags Backup
// @Accept json
// @Produce json
// @Success 200 {array} project.Project
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /backup/projects [get]
func (h *BackupHandler) Backup(c *fiber.Ctx) error {
	snapshot, err := services.BackupAll(h.DB)
	if err != nil {
		return serviceError(c, err, "backup")
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}

// Restore handles POST /api/backup/projects
// @Summary Restore from a snapshot
// @Description Upsert every item by id in one transaction; malformed payloads write nothing
// @Tags Backup
// @Accept json
// @Produce json
// @Param body body object true "Snapshot array"
// @Success 200 {object} services.RestoreResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /backup/projects [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	raw := bytes.TrimSpace(c.Body())
	if len(raw) == 0 || raw[0] != '[' {
		return utils.ErrorResponse(c, "Snapshot must be a JSON array", fiber.StatusBadRequest, "backup.validation.input")
	}

	var items []project.Project
	if err := json.Unmarshal(raw, &items); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "backup.validation.input")
	}

	result, err := services.RestoreAll(h.DB, items)
	if err != nil {
		return serviceError(c, err, "restore")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// RestoreSpreadsheet handles POST /api/backup/projects/xlsx
// @Summary Restore from a spreadsheet
// @Description Map labelled spreadsheet rows back into projects and upsert them
// @Tags Backup
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} services.RestoreResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /backup/projects/xlsx [post]
func (h *BackupHandler) RestoreSpreadsheet(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "Missing file upload", fiber.StatusBadRequest, "backup.validation.input")
	}

	f, err := fh.Open()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "backup.validation.input")
	}
	defer f.Close()

	items, err := importer.Parse(f)
	if err != nil {
		return serviceError(c, err, "restoreSpreadsheet")
	}

	result, err := services.RestoreAll(h.DB, items)
	if err != nil {
		return serviceError(c, err, "restoreSpreadsheet")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
