// revision_service.go
//
// The revision ledger: an append-mostly, edit-in-place list of quote
// revisions per project. Entries get stable ids at creation; stored rev
// numbers are never renumbered after deletions, so gaps are expected and the
// display layer derives its own numbering.

package services

import (
	"fmt"
	"time"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevisionInput carries a new revision's fields. Amount is required.
type RevisionInput struct {
	Amount types.FlexWon `json:"amount"`
	Note   string        `json:"note,omitempty"`
}

// EditRevisionInput point-edits an existing entry; nil fields are untouched.
type EditRevisionInput struct {
	Amount *types.FlexWon `json:"amount,omitempty"`
	Note   *string        `json:"note,omitempty"`
}

const defaultRevisionNote = "routine update"

// AddRevision appends a revision with rev = current count and today's date,
// touching updatedAt and lastModifier.
func AddRevision(db *gorm.DB, projectID string, in RevisionInput, actor string) (project.Revision, error) {
	amount := nonNegative(in.Amount.Int64())
	if amount == 0 {
		return project.Revision{}, fmt.Errorf("%w: amount is required", ErrValidation)
	}

	note := in.Note
	if note == "" {
		note = defaultRevisionNote
	}

	var created project.Revision
	err := mutateProject(db, projectID, actor, func(p *project.Project) error {
		rev := len(p.Revisions)
		created = project.Revision{
			ID:     uuid.NewString(),
			Rev:    rev,
			Date:   time.Now().UTC().Format(project.DateLayout),
			Amount: amount,
			Note:   note,
			File:   fmt.Sprintf("EST_Rev%d.xlsx", rev),
		}
		p.Revisions = append(p.Revisions, created)
		return nil
	}, nil)
	if err != nil {
		return project.Revision{}, err
	}

	return created, nil
}

// SaveEditedAsNewRevision appends a revision sourced from an in-progress edit
// buffer, preserving the original entry instead of overwriting it.
func SaveEditedAsNewRevision(db *gorm.DB, projectID string, in RevisionInput, actor string) (project.Revision, error) {
	return AddRevision(db, projectID, in, actor)
}

// EditRevision mutates one entry in place: no new rev number, no reordering.
func EditRevision(db *gorm.DB, projectID, revisionID string, in EditRevisionInput, actor string) error {
	return mutateProject(db, projectID, actor, func(p *project.Project) error {
		for i := range p.Revisions {
			if p.Revisions[i].ID != revisionID {
				continue
			}
			if in.Amount != nil {
				p.Revisions[i].Amount = nonNegative(in.Amount.Int64())
			}
			if in.Note != nil {
				p.Revisions[i].Note = *in.Note
			}
			return nil
		}
		return ErrNotFound
	}, nil)
}

// DeleteRevision removes exactly one entry by id. Surviving rev values keep
// their numbers.
func DeleteRevision(db *gorm.DB, projectID, revisionID string, actor string) error {
	return mutateProject(db, projectID, actor, func(p *project.Project) error {
		for i := range p.Revisions {
			if p.Revisions[i].ID == revisionID {
				p.Revisions = append(p.Revisions[:i], p.Revisions[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	}, nil)
}
