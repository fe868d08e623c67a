// project_service.go
//
// Project aggregate CRUD. Every mutation is a whole-row read-modify-write
// inside a transaction holding a row lock where the dialect supports one;
// concurrent full updates race under last-write-wins, which is accepted for
// the single-office usage profile.

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/goldtek/quotetrack/internal/models"
	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/types"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateProjectInput is the typed create body. Unknown fields are rejected at
// the handler boundary.
type CreateProjectInput struct {
	ID               string        `json:"id,omitempty"`
	Name             string        `json:"name"`
	Client           string        `json:"client"`
	Manager          string        `json:"manager,omitempty"`
	SalesRep         string        `json:"salesRep,omitempty"`
	ContractMethod   string        `json:"contractMethod,omitempty"`
	LedgerName       string        `json:"ledgerName,omitempty"`
	ProjectIDDisplay string        `json:"projectIdDisplay,omitempty"`
	ContractAmount   types.FlexWon `json:"contractAmount,omitempty"`
	Status           string        `json:"status,omitempty"`
}

// UpdateProjectInput is the typed merge-update body; only non-nil fields are
// applied. Nested arrays have their own endpoints and are not updatable here.
type UpdateProjectInput struct {
	Name             *string        `json:"name,omitempty"`
	Client           *string        `json:"client,omitempty"`
	Manager          *string        `json:"manager,omitempty"`
	SalesRep         *string        `json:"salesRep,omitempty"`
	ContractMethod   *string        `json:"contractMethod,omitempty"`
	LedgerName       *string        `json:"ledgerName,omitempty"`
	ProjectIDDisplay *string        `json:"projectIdDisplay,omitempty"`
	ContractAmount   *types.FlexWon `json:"contractAmount,omitempty"`
	FinalCost        *types.FlexWon `json:"finalCost,omitempty"`
	IsCostConfirmed  *bool          `json:"isCostConfirmed,omitempty"`
	Status           *string        `json:"status,omitempty"`
}

// ListFilter narrows ListProjects server-side. Zero values mean no filter.
type ListFilter struct {
	Status string
	Ledger string
}

// DecodeStrict unmarshals into out, rejecting unknown fields instead of
// silently merging them into the data blob.
func DecodeStrict(raw []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// CreateProject creates a project with its seed revision and an all-nil
// progress map. Name and client are required.
func CreateProject(db *gorm.DB, in CreateProjectInput, actor string) (project.Project, error) {
	if in.Name == "" || in.Client == "" {
		return project.Project{}, fmt.Errorf("%w: name and client are required", ErrValidation)
	}

	// Truncated to seconds so snapshots round-trip byte-identically.
	now := time.Now().UTC().Truncate(time.Second)

	p := project.Project{
		ID:     in.ID,
		Name:   in.Name,
		Client: in.Client,
		Details: project.Details{
			Status:           project.StatusDesign,
			Manager:          in.Manager,
			SalesRep:         in.SalesRep,
			ContractMethod:   in.ContractMethod,
			LedgerName:       in.LedgerName,
			ProjectIDDisplay: in.ProjectIDDisplay,
			ContractAmount:   nonNegative(in.ContractAmount.Int64()),
			CreatedBy:        actor,
			LastModifier:     actor,
		},
		Revisions: []project.Revision{
			project.SeedRevision(uuid.NewString(), now.Format(project.DateLayout)),
		},
		Memos:    []project.Memo{},
		Progress: project.NewProgress(),
	}

	if in.Status != "" {
		p.Status = project.NormalizeStatus(in.Status)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	row := project.ToRow(p, now)
	if err := db.Create(&row).Error; err != nil {
		return project.Project{}, err
	}

	return project.FromRow(&row), nil
}

// ListProjects returns all projects newest-first, optionally filtered
// server-side on status and ledger via JSON queries against the data blob.
func ListProjects(db *gorm.DB, filter ListFilter) ([]project.Project, error) {
	query := db.Model(&models.ProjectRow{})

	if filter.Status != "" {
		status := string(project.NormalizeStatus(filter.Status))
		query = query.Where(datatypes.JSONQuery("data").Equals(status, "status"))
	}
	if filter.Ledger != "" {
		query = query.Where(datatypes.JSONQuery("data").Equals(filter.Ledger, "ledgerName"))
	}

	var rows []models.ProjectRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, project.FromRow(&rows[i]))
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt > projects[j].CreatedAt
	})

	return projects, nil
}

// GetProject fetches one project by id.
func GetProject(db *gorm.DB, id string) (project.Project, error) {
	var row models.ProjectRow
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return project.Project{}, ErrNotFound
		}
		return project.Project{}, err
	}
	return project.FromRow(&row), nil
}

// UpdateProject merge-updates descriptive/financial fields and bumps
// updatedAt. Absent fields are left untouched.
func UpdateProject(db *gorm.DB, id string, in UpdateProjectInput, actor string) (project.Project, error) {
	var updated project.Project

	err := mutateProject(db, id, actor, func(p *project.Project) error {
		applyString(in.Name, &p.Name)
		applyString(in.Client, &p.Client)
		applyString(in.Manager, &p.Manager)
		applyString(in.SalesRep, &p.SalesRep)
		applyString(in.ContractMethod, &p.ContractMethod)
		applyString(in.LedgerName, &p.LedgerName)
		applyString(in.ProjectIDDisplay, &p.ProjectIDDisplay)
		if in.ContractAmount != nil {
			p.ContractAmount = nonNegative(in.ContractAmount.Int64())
		}
		if in.FinalCost != nil {
			p.FinalCost = nonNegative(in.FinalCost.Int64())
		}
		if in.IsCostConfirmed != nil {
			p.IsCostConfirmed = *in.IsCostConfirmed
		}
		if in.Status != nil {
			p.Status = project.NormalizeStatus(*in.Status)
		}
		return nil
	}, &updated)

	return updated, err
}

// UpdateCost overwrites the three cost fields atomically in a single update.
// Absent or invalid money inputs coerce to 0.
func UpdateCost(db *gorm.DB, id string, finalCost, contractAmount types.FlexWon, isCostConfirmed bool, actor string) (project.Project, error) {
	var updated project.Project
	err := mutateProject(db, id, actor, func(p *project.Project) error {
		p.FinalCost = nonNegative(finalCost.Int64())
		p.ContractAmount = nonNegative(contractAmount.Int64())
		p.IsCostConfirmed = isCostConfirmed
		return nil
	}, &updated)
	return updated, err
}

// DeleteProject removes a project unconditionally. Children are embedded, so
// there is nothing to cascade.
func DeleteProject(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.ProjectRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// mutateProject is the shared read-modify-write path for every nested
// mutation: lock the row, decode, apply, stamp audit fields, save.
func mutateProject(db *gorm.DB, id, actor string, apply func(*project.Project) error, out *project.Project) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var row models.ProjectRow
		if err := lockForUpdate(tx).Where("id = ?", id).First(&row).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		p := project.FromRow(&row)
		if err := apply(&p); err != nil {
			return err
		}

		now := time.Now().UTC().Truncate(time.Second)
		p.UpdatedAt = now.Format(time.RFC3339)
		if actor != "" {
			p.LastModifier = actor
		}

		updatedRow := project.ToRow(p, now)
		updatedRow.CreatedAt = row.CreatedAt
		if err := tx.Save(&updatedRow).Error; err != nil {
			return err
		}

		if out != nil {
			*out = project.FromRow(&updatedRow)
		}
		return nil
	})
}

// lockForUpdate applies a row lock on dialects that support SELECT ... FOR
// UPDATE. SQLite serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func applyString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
