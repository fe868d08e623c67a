package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/testhelpers"
)

// Exercises the JSON column handling and row locking against a real MySQL.
// Skipped unless QUOTETRACK_IT=1.
func TestProjectLifecycleOnMySQL(t *testing.T) {
	db := testhelpers.StartMySQL(t)

	p, err := services.CreateProject(db, services.CreateProjectInput{
		Name:   "수배전반 교체",
		Client: "한국전력",
	}, "it")
	require.NoError(t, err)

	_, err = services.AddRevision(db, p.ID, services.RevisionInput{Amount: won(5000000)}, "it")
	require.NoError(t, err)

	updated, err := services.SetStatus(db, p.ID, "수주", "it")
	require.NoError(t, err)
	assert.Equal(t, project.StatusContract, updated.Status)
	assert.True(t, updated.Progress.Done(project.StageContract))

	filtered, err := services.ListProjects(db, services.ListFilter{Status: "contract"})
	require.NoError(t, err)
	require.Len(t, filtered, 1, "JSON query filter should work on MySQL")

	snapshot, err := services.BackupAll(db)
	require.NoError(t, err)
	result, err := services.RestoreAll(db, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	require.NoError(t, services.DeleteProject(db, p.ID))
}
