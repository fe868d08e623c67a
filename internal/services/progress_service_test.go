package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
)

func TestSetStatusStampsImpliedStage(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "status sync")

	updated, err := services.SetStatus(db, p.ID, "production", "")
	require.NoError(t, err)

	assert.Equal(t, project.StatusProduction, updated.Status)
	assert.True(t, updated.Progress.Done(project.StageProduction), "production stage should be stamped")
	assert.False(t, updated.Progress.Done(project.StageContract), "earlier stages are not force-completed")

	firstStamp := *updated.Progress[project.StageProduction]

	// Setting the same status again must not move the stamp.
	again, err := services.SetStatus(db, p.ID, "production", "")
	require.NoError(t, err)
	require.True(t, again.Progress.Done(project.StageProduction))
	assert.Equal(t, firstStamp, *again.Progress[project.StageProduction])
}

func TestSetStatusNormalizesLegacyValue(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "legacy status")

	updated, err := services.SetStatus(db, p.ID, "수주", "")
	require.NoError(t, err)
	assert.Equal(t, project.StatusContract, updated.Status)
	assert.True(t, updated.Progress.Done(project.StageContract))
}

func TestSetStatusHoldStampsNothing(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "on hold")

	updated, err := services.SetStatus(db, p.ID, "hold", "")
	require.NoError(t, err)
	assert.Equal(t, project.StatusHold, updated.Status)
	for _, stage := range project.StageKeys {
		assert.False(t, updated.Progress.Done(stage), "hold must not stamp %s", stage)
	}
}

func TestSetStatusCompleteStampsCollection(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "complete")

	updated, err := services.SetStatus(db, p.ID, "complete", "")
	require.NoError(t, err)
	assert.True(t, updated.Progress.Done(project.StageCollection))
}

func TestToggleProgressSelfInverse(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "toggle")

	on, err := services.ToggleProgress(db, p.ID, project.StageDelivery, "")
	require.NoError(t, err)
	assert.True(t, on.Done(project.StageDelivery))

	off, err := services.ToggleProgress(db, p.ID, project.StageDelivery, "")
	require.NoError(t, err)
	assert.False(t, off.Done(project.StageDelivery))

	// The key survives as an explicit nil rather than disappearing.
	_, present := off[project.StageDelivery]
	assert.True(t, present)
}

func TestToggleProgressAcceptsArbitraryKeys(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProject(t, db, "extra stage")

	progress, err := services.ToggleProgress(db, p.ID, "warranty-visit", "")
	require.NoError(t, err)
	assert.True(t, progress.Done("warranty-visit"))

	stored, err := services.GetProject(db, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Progress.Done("warranty-visit"), "unknown keys persist")
}

func TestToggleProgressProjectNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.ToggleProgress(db, "missing", project.StageDesign, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
