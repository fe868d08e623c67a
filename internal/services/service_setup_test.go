package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/goldtek/quotetrack/internal/models"
	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/types"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	require.NoError(t, db.AutoMigrate(&models.ProjectRow{}), "Failed to migrate test database")

	return db
}

// createTestProject creates a minimal project and returns it.
func createTestProject(t *testing.T, db *gorm.DB, name string) project.Project {
	t.Helper()

	p, err := services.CreateProject(db, services.CreateProjectInput{
		Name:   name,
		Client: "한국전력",
	}, "tester")
	require.NoError(t, err)
	return p
}

func won(v int64) types.FlexWon {
	return types.FlexWon(v)
}

func wonPtr(v int64) *types.FlexWon {
	w := types.FlexWon(v)
	return &w
}

func strPtr(s string) *string {
	return &s
}
