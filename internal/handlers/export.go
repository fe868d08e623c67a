// export.go
//
// xlsx download routes.

package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/excel"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles spreadsheet export routes
type ExportHandler struct {
	DB *gorm.DB
}

// ExportList handles GET /api/projects/export
// @Summary Export the project list
// @Description Download the full project list as an xlsx workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/export [get]
func (h *ExportHandler) ExportList(c *fiber.Ctx) error {
	projects, err := services.ListProjects(h.DB, services.ListFilter{})
	if err != nil {
		return serviceError(c, err, "exportList")
	}

	f, err := excel.ProjectList(projects)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "exportList")
	}

	name := fmt.Sprintf("projects_%s.xlsx", time.Now().UTC().Format("20060102"))
	return sendWorkbook(c, f, name)
}

// ExportCard handles GET /api/projects/:id/export
// @Summary Export one project's management card
// @Description Download a single project card with its revision history
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/export [get]
func (h *ExportHandler) ExportCard(c *fiber.Ctx) error {
	p, err := services.GetProject(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "exportCard")
	}

	f, err := excel.ProjectCard(p)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "exportCard")
	}

	return sendWorkbook(c, f, fmt.Sprintf("project_%s.xlsx", p.ID))
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "exportWorkbook")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
