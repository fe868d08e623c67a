// project.go
//
// Typed project aggregate and its mapping to/from the persisted row shape.
// The row stores nested structures as JSON columns; decoding is deliberately
// defensive so one corrupt blob degrades to empty defaults instead of failing
// the whole read.

package project

import (
	"encoding/json"
	"time"

	"github.com/goldtek/quotetrack/internal/models"
	"gorm.io/datatypes"
)

// DateLayout is the storage format for revision dates.
const DateLayout = "2006-01-02"

// Revision is one historical quote amount with its rationale. Entries are
// ordered oldest-first in storage; display layers show them newest-first.
type Revision struct {
	ID     string `json:"id"`
	Rev    int    `json:"rev"`
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
	File   string `json:"file"`
}

// Memo is a named free-text note, independent of the revision ledger.
type Memo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Progress maps a milestone stage key to its completion date, nil when the
// stage is not done. Presence of a non-nil value is the sole "done" signal.
type Progress map[string]*string

// Done reports whether the stage has a completion date.
func (p Progress) Done(stage string) bool {
	v, ok := p[stage]
	return ok && v != nil
}

// Details holds every project field outside the fixed column set. It is
// stored as the row's data blob but always decoded into this struct; unknown
// keys are dropped on read and rejected at the API boundary on write.
type Details struct {
	Status           Status `json:"status,omitempty"`
	Manager          string `json:"manager,omitempty"`
	SalesRep         string `json:"salesRep,omitempty"`
	ContractMethod   string `json:"contractMethod,omitempty"`
	LedgerName       string `json:"ledgerName,omitempty"`
	ProjectIDDisplay string `json:"projectIdDisplay,omitempty"`
	ContractAmount   int64  `json:"contractAmount,omitempty"`
	FinalCost        int64  `json:"finalCost,omitempty"`
	IsCostConfirmed  bool   `json:"isCostConfirmed,omitempty"`
	CreatedBy        string `json:"createdBy,omitempty"`
	LastModifier     string `json:"lastModifier,omitempty"`
}

// Project is the central aggregate handed to handlers and exporters.
// Details is embedded so the JSON shape stays flat, matching what clients
// historically received from the row-to-project mapping.
type Project struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client"`
	Details
	Revisions []Revision `json:"revisions"`
	Memos     []Memo     `json:"memos"`
	Progress  Progress   `json:"progress"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// StageKeys is the canonical milestone set seeded on creation. Arbitrary
// extra keys are tolerated and stored to survive schema evolution.
var StageKeys = []string{StageDesign, StageContract, StageProduction, StageDelivery, StageCollection}

// NewProgress returns an all-nil progress map over the canonical stages.
func NewProgress() Progress {
	p := make(Progress, len(StageKeys))
	for _, k := range StageKeys {
		p[k] = nil
	}
	return p
}

// SeedRevision is the revision 0 entry every project starts with.
func SeedRevision(id string, today string) Revision {
	return Revision{
		ID:     id,
		Rev:    0,
		Date:   today,
		Amount: 0,
		Note:   "initial creation",
		File:   "-",
	}
}

// FromRow maps a persisted row to the aggregate. Blob columns that fail to
// parse decode to empty defaults rather than erroring.
func FromRow(row *models.ProjectRow) Project {
	p := Project{
		ID:     row.ID,
		Name:   row.Name,
		Client: row.Client,
	}

	decodeBlob(row.Data.JSON, &p.Details)
	decodeBlob(row.Revisions.JSON, &p.Revisions)
	decodeBlob(row.Memos.JSON, &p.Memos)
	decodeBlob(row.Progress.JSON, &p.Progress)

	// Rows written before the status migration carry legacy values.
	p.Status = NormalizeStatus(string(p.Status))

	if p.Revisions == nil {
		p.Revisions = []Revision{}
	}
	if p.Memos == nil {
		p.Memos = []Memo{}
	}
	if p.Progress == nil {
		p.Progress = Progress{}
	}

	if !row.CreatedAt.IsZero() {
		p.CreatedAt = row.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !row.UpdatedAt.IsZero() {
		p.UpdatedAt = row.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return p
}

// ToRow maps the aggregate back to the persisted row shape. Zero timestamps
// default to now so freshly created projects are stamped exactly once.
func ToRow(p Project, now time.Time) models.ProjectRow {
	row := models.ProjectRow{
		ID:        p.ID,
		Name:      p.Name,
		Client:    p.Client,
		Data:      encodeBlob(p.Details),
		Revisions: encodeBlob(p.Revisions),
		Memos:     encodeBlob(p.Memos),
		Progress:  encodeBlob(p.Progress),
		CreatedAt: parseTimestamp(p.CreatedAt, now),
		UpdatedAt: parseTimestamp(p.UpdatedAt, now),
	}
	return row
}

func decodeBlob(raw datatypes.JSON, out interface{}) {
	if len(raw) == 0 {
		return
	}
	// Errors intentionally ignored: fall back to the zero value.
	_ = json.Unmarshal(raw, out)
}

func encodeBlob(v interface{}) models.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		raw = []byte("null")
	}
	return models.JSON{JSON: datatypes.JSON(raw)}
}

func parseTimestamp(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return fallback
}
