package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
)

func TestBackupRestoreRoundTripIsNoOp(t *testing.T) {
	db := setupTestDB(t)

	p := createTestProject(t, db, "round trip")
	_, err := services.AddRevision(db, p.ID, services.RevisionInput{Amount: won(5000000)}, "")
	require.NoError(t, err)
	_, err = services.SetStatus(db, p.ID, "production", "")
	require.NoError(t, err)

	before, err := services.BackupAll(db)
	require.NoError(t, err)
	require.Len(t, before, 1)

	// Cross a clock second so any implicit re-stamping of timestamps during
	// the restore shows up as a diff.
	time.Sleep(1100 * time.Millisecond)

	result, err := services.RestoreAll(db, before)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 0, result.FailCount)

	after, err := services.BackupAll(db)
	require.NoError(t, err)

	// Byte-identical snapshots: restoring an unchanged backup changes nothing.
	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(after)
	assert.JSONEq(t, string(beforeJSON), string(afterJSON))
	require.Len(t, after, 1)
	assert.Equal(t, before[0].UpdatedAt, after[0].UpdatedAt)
}

func TestRestoreUpsertsByID(t *testing.T) {
	db := setupTestDB(t)

	existing := createTestProject(t, db, "old name")

	snapshot := []project.Project{
		{ // overwrites the stored project wholesale
			ID:     existing.ID,
			Name:   "new name",
			Client: "new client",
			Details: project.Details{
				Status:         project.StatusContract,
				ContractAmount: 7000000,
			},
			Revisions: []project.Revision{
				{ID: "r-0", Rev: 0, Date: "2026-01-05", Amount: 0, Note: "initial creation", File: "-"},
				{ID: "r-1", Rev: 1, Date: "2026-01-20", Amount: 7000000, Note: "imported", File: "EST_Rev1.xlsx"},
			},
			Memos:    []project.Memo{},
			Progress: project.NewProgress(),
		},
		{ // brand new id gets created
			ID:        "imported-2",
			Name:      "imported project",
			Client:    "imported client",
			Revisions: []project.Revision{},
			Memos:     []project.Memo{},
			Progress:  project.NewProgress(),
		},
	}

	result, err := services.RestoreAll(db, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	all, err := services.ListProjects(db, services.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "upsert must not duplicate the existing project")

	overwritten, err := services.GetProject(db, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "new name", overwritten.Name)
	assert.Equal(t, project.StatusContract, overwritten.Status)
	require.Len(t, overwritten.Revisions, 2)
	assert.Equal(t, "imported", overwritten.Revisions[1].Note)

	created, err := services.GetProject(db, "imported-2")
	require.NoError(t, err)
	assert.Equal(t, "imported project", created.Name)
}

func TestRestoreCountsItemsWithoutID(t *testing.T) {
	db := setupTestDB(t)

	result, err := services.RestoreAll(db, []project.Project{
		{Name: "no id", Client: "c"},
		{ID: "has-id", Name: "with id", Client: "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 1, result.FailCount)

	all, err := services.ListProjects(db, services.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRestoreEmptySnapshot(t *testing.T) {
	db := setupTestDB(t)

	result, err := services.RestoreAll(db, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Count)
}
