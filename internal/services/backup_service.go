// backup_service.go
//
// Portable snapshot export and upsert-by-id restore. Restore is a
// destructive merge: an imported item overwrites the stored project with the
// same id wholesale, including nested revisions/memos/progress. The bulk path
// runs in one transaction so a failed import leaves no partial state.

package services

import (
	"time"

	"github.com/goldtek/quotetrack/internal/models"
	"github.com/goldtek/quotetrack/internal/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// RestoreResult reports a bulk restore outcome. FailCount counts items
// skipped for having no id.
type RestoreResult struct {
	Success   bool `json:"success"`
	Count     int  `json:"count"`
	FailCount int  `json:"failCount"`
}

// BackupAll reads every project as-is for a portable snapshot.
func BackupAll(db *gorm.DB) ([]project.Project, error) {
	var rows []models.ProjectRow
	// Tagged so the full scan is identifiable in slow-query logs.
	if err := db.Clauses(hints.Comment("select", "backup-snapshot")).Find(&rows).Error; err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, project.FromRow(&rows[i]))
	}
	return projects, nil
}

// RestoreAll upserts every item that carries an id, in one transaction.
// Applying an unchanged snapshot back onto the store is a no-op.
func RestoreAll(db *gorm.DB, items []project.Project) (RestoreResult, error) {
	result := RestoreResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.ID == "" {
				result.FailCount++
				continue
			}

			var existing models.ProjectRow
			err := tx.Where("id = ?", item.ID).First(&existing).Error
			switch err {
			case nil:
				row := project.ToRow(item, existing.UpdatedAt)
				if item.CreatedAt == "" {
					row.CreatedAt = existing.CreatedAt
				}
				if err := tx.Save(&row).Error; err != nil {
					return err
				}
			case gorm.ErrRecordNotFound:
				row := project.ToRow(item, time.Now().UTC().Truncate(time.Second))
				if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}

			result.Count++
		}
		return nil
	})
	if err != nil {
		return RestoreResult{}, err
	}

	result.Success = true
	return result, nil
}
