// project.go
//
// One row per project. Nested structures (revision history, memos, the
// progress map) and every field outside the fixed column set live in JSON
// columns, so adding an optional field needs no migration.

package models

import (
	"time"
)

// ProjectRow is the persisted shape of a project.
type ProjectRow struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:255"`
	Client    string `gorm:"size:255"`
	Data      JSON   `gorm:"type:json"`
	Revisions JSON   `gorm:"type:json"`
	Memos     JSON   `gorm:"type:json"`
	Progress  JSON   `gorm:"type:json"`
	CreatedAt time.Time
	// Stamped by the service layer, never by the ORM: a restored snapshot
	// must keep the updatedAt it was exported with.
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName overrides the table name for ProjectRow
func (ProjectRow) TableName() string {
	return "projects"
}
