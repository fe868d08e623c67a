// projects.go
//
// Project CRUD, listing with server-side filters, derived stats, and the
// atomic cost update.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/types"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// ProjectHandler handles project routes
type ProjectHandler struct {
	DB *gorm.DB
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description List all projects, newest first, optionally filtered by status and ledger
// @Tags Projects
// @Accept json
// @Produce json
// @Param status query string false "Canonical or legacy status value"
// @Param ledger query string false "Ledger name"
// @Success 200 {array} project.Project
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	filter := services.ListFilter{
		Status: c.Query("status"),
		Ledger: c.Query("ledger"),
	}

	projects, err := services.ListProjects(h.DB, filter)
	if err != nil {
		return serviceError(c, err, "listProjects")
	}

	return c.Status(fiber.StatusOK).JSON(projects)
}

// GetStats handles GET /api/projects/stats
// @Summary Get project statistics
// @Description Ongoing/won counts, total won amount, average margin, and known years
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/stats [get]
func (h *ProjectHandler) GetStats(c *fiber.Ctx) error {
	projects, err := services.ListProjects(h.DB, services.ListFilter{})
	if err != nil {
		return serviceError(c, err, "getStats")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"stats": project.CalculateStats(projects),
		"years": project.Years(projects),
	})
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Create a project with a seeded revision 0 and empty progress map
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body services.CreateProjectInput true "Project fields"
// @Success 201 {object} project.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var body services.CreateProjectInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}

	created, err := services.CreateProject(h.DB, body, actor(c))
	if err != nil {
		return serviceError(c, err, "createProject")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetProject handles GET /api/projects/:id
// @Summary Get a project
// @Description Get one project with its full revision ledger, memos, and progress
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	p, err := services.GetProject(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getProject")
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

// UpdateProject handles PUT /api/projects/:id
// @Summary Update a project
// @Description Merge-update scalar fields; unknown fields are rejected
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.UpdateProjectInput true "Fields to change"
// @Success 200 {object} project.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var body services.UpdateProjectInput
	if err := decodeBody(c, &body); err != nil {
		return serviceError(c, err, "project.validation.input")
	}

	updated, err := services.UpdateProject(h.DB, c.Params("id"), body, actor(c))
	if err != nil {
		return serviceError(c, err, "updateProject")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// UpdateCost handles PUT /api/projects/:id/cost
// @Summary Update project cost figures
// @Description Atomically overwrite final cost, contract amount, and the confirmation flag
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body object true "Cost fields"
// @Success 200 {object} project.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/cost [put]
func (h *ProjectHandler) UpdateCost(c *fiber.Ctx) error {
	var body struct {
		FinalCost       types.FlexWon `json:"finalCost"`
		ContractAmount  types.FlexWon `json:"contractAmount"`
		IsCostConfirmed bool          `json:"isCostConfirmed"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}

	updated, err := services.UpdateCost(h.DB, c.Params("id"), body.FinalCost, body.ContractAmount, body.IsCostConfirmed, actor(c))
	if err != nil {
		return serviceError(c, err, "updateCost")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Delete a project
// @Description Delete one project; other projects keep their ids untouched
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	if err := services.DeleteProject(h.DB, c.Params("id")); err != nil {
		return serviceError(c, err, "deleteProject")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"id": c.Params("id")})
}
