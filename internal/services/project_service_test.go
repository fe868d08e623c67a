package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
)

func TestCreateProjectSeedsLedgerAndProgress(t *testing.T) {
	db := setupTestDB(t)

	p := createTestProject(t, db, "배전반 신설")

	require.NotEmpty(t, p.ID, "created project should get a generated id")
	assert.Equal(t, project.StatusDesign, p.Status)

	require.Len(t, p.Revisions, 1)
	seed := p.Revisions[0]
	assert.Equal(t, 0, seed.Rev)
	assert.Equal(t, int64(0), seed.Amount)
	assert.Equal(t, "initial creation", seed.Note)
	assert.NotEmpty(t, seed.ID, "seed revision needs a stable id")

	assert.Len(t, p.Progress, len(project.StageKeys))
	for _, stage := range project.StageKeys {
		assert.False(t, p.Progress.Done(stage), "stage %s should start open", stage)
	}

	assert.Equal(t, "tester", p.CreatedBy)
	assert.NotEmpty(t, p.CreatedAt)
}

func TestCreateProjectRequiresNameAndClient(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreateProject(db, services.CreateProjectInput{Name: "only name"}, "")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = services.CreateProject(db, services.CreateProjectInput{Client: "only client"}, "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCreateProjectNormalizesStatus(t *testing.T) {
	db := setupTestDB(t)

	p, err := services.CreateProject(db, services.CreateProjectInput{
		Name:   "legacy import",
		Client: "client",
		Status: "수주",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, project.StatusContract, p.Status)
}

func TestGetProjectNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetProject(db, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateProjectMergesOnlyProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "판넬 교체")

	updated, err := services.UpdateProject(db, p.ID, services.UpdateProjectInput{
		Manager:        strPtr("김과장"),
		ContractAmount: wonPtr(5800000),
	}, "editor")
	require.NoError(t, err)

	assert.Equal(t, "김과장", updated.Manager)
	assert.Equal(t, int64(5800000), updated.ContractAmount)
	// untouched fields survive
	assert.Equal(t, "판넬 교체", updated.Name)
	assert.Equal(t, "한국전력", updated.Client)
	assert.Equal(t, "editor", updated.LastModifier)

	// revisions and progress are not reachable through merge updates
	assert.Len(t, updated.Revisions, 1)
}

func TestUpdateProjectCoercesNegativeMoney(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "negative money")

	updated, err := services.UpdateProject(db, p.ID, services.UpdateProjectInput{
		FinalCost: wonPtr(-500),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.FinalCost)
}

func TestUpdateCostOverwritesAllThreeFields(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "cost confirm")

	updated, err := services.UpdateCost(db, p.ID, won(4600000), won(5800000), true, "")
	require.NoError(t, err)

	assert.Equal(t, int64(4600000), updated.FinalCost)
	assert.Equal(t, int64(5800000), updated.ContractAmount)
	assert.True(t, updated.IsCostConfirmed)
}

func TestDeleteProjectLeavesOthersUntouched(t *testing.T) {
	db := setupTestDB(t)
	a := createTestProject(t, db, "keep me")
	b := createTestProject(t, db, "delete me")

	require.NoError(t, services.DeleteProject(db, b.ID))

	_, err := services.GetProject(db, b.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	kept, err := services.GetProject(db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", kept.Name)

	assert.ErrorIs(t, services.DeleteProject(db, b.ID), services.ErrNotFound,
		"double delete reports not found")
}

func TestListProjectsFilters(t *testing.T) {
	db := setupTestDB(t)

	a := createTestProject(t, db, "in design")
	b := createTestProject(t, db, "in production")
	_, err := services.SetStatus(db, b.ID, "production", "")
	require.NoError(t, err)

	_, err = services.UpdateProject(db, a.ID, services.UpdateProjectInput{
		LedgerName: strPtr("2026 수주대장"),
	}, "")
	require.NoError(t, err)

	all, err := services.ListProjects(db, services.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// legacy filter value normalizes before matching
	inProduction, err := services.ListProjects(db, services.ListFilter{Status: "제작"})
	require.NoError(t, err)
	require.Len(t, inProduction, 1)
	assert.Equal(t, b.ID, inProduction[0].ID)

	ledger, err := services.ListProjects(db, services.ListFilter{Ledger: "2026 수주대장"})
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, a.ID, ledger[0].ID)
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	var in services.UpdateProjectInput
	err := services.DecodeStrict([]byte(`{"name":"x","nickname":"y"}`), &in)
	assert.ErrorIs(t, err, services.ErrValidation)

	err = services.DecodeStrict([]byte(`{"name":"x"}`), &in)
	assert.NoError(t, err)
}
