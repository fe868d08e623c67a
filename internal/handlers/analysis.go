// analysis.go
//
// Note refinement and project commentary routes.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/analysis"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// AnalysisHandler handles note refinement and project analysis routes
type AnalysisHandler struct {
	DB       *gorm.DB
	Analyzer *analysis.Analyzer
}

// RefineNote handles POST /api/analysis/refine-note
// @Summary Refine a revision note
// @Description Rewrite a raw revision note into a clean one-liner
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body object true "Raw note text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /analysis/refine-note [post]
func (h *AnalysisHandler) RefineNote(c *fiber.Ctx) error {
	var body struct {
		Note string `json:"note"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "analysis.validation.input")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"note": h.Analyzer.RefineNote(c.Context(), body.Note),
	})
}

// AnalyzeProject handles GET /api/projects/:id/analysis
// @Summary Analyze a project
// @Description Margin commentary for one project
// @Tags Analysis
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/analysis [get]
func (h *AnalysisHandler) AnalyzeProject(c *fiber.Ctx) error {
	p, err := services.GetProject(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "analyzeProject")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"projectId": p.ID,
		"analysis":  h.Analyzer.AnalyzeProject(c.Context(), p),
	})
}
