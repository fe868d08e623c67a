// progress_service.go
//
// Status/progress synchronization. A status change is a coarse signal that
// the corresponding milestone was reached: it stamps that one stage if still
// open, but never un-stamps earlier milestones or force-completes
// intermediate ones. Stage ordering is intentionally not enforced; real
// projects skip and reorder paperwork.

package services

import (
	"time"

	"github.com/goldtek/quotetrack/internal/project"
	"gorm.io/gorm"
)

// SetStatus normalizes and stores the status, auto-stamping the implied
// progress stage when it is not yet done. Returns the updated project.
func SetStatus(db *gorm.DB, projectID, rawStatus, actor string) (project.Project, error) {
	status := project.NormalizeStatus(rawStatus)

	var updated project.Project
	err := mutateProject(db, projectID, actor, func(p *project.Project) error {
		p.Status = status

		if stage, ok := project.StageForStatus(status); ok && !p.Progress.Done(stage) {
			stamp := time.Now().UTC().Format(time.RFC3339)
			if p.Progress == nil {
				p.Progress = project.Progress{}
			}
			p.Progress[stage] = &stamp
		}
		return nil
	}, &updated)

	return updated, err
}

// ToggleProgress flips one stage: stamped becomes open, open gets today's
// date. Toggling twice restores the prior state (modulo the stamp date when
// the toggles span days). Arbitrary stage keys are accepted and stored.
func ToggleProgress(db *gorm.DB, projectID, stage, actor string) (project.Progress, error) {
	var updated project.Project
	err := mutateProject(db, projectID, actor, func(p *project.Project) error {
		if p.Progress == nil {
			p.Progress = project.Progress{}
		}
		if p.Progress.Done(stage) {
			p.Progress[stage] = nil
		} else {
			stamp := time.Now().UTC().Format(time.RFC3339)
			p.Progress[stage] = &stamp
		}
		return nil
	}, &updated)
	if err != nil {
		return nil, err
	}

	return updated.Progress, nil
}
