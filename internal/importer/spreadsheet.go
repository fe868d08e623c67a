// spreadsheet.go
//
// Restores from the denormalized spreadsheet form: flat rows with display
// label columns, as produced by the list export (and by years of hand-kept
// office spreadsheets). Currency-like strings are stripped to integers and
// Excel date serials are converted to ISO timestamps.

package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/types"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ErrMalformed is returned when the sheet is missing the expected columns.
// Nothing is written when it fires.
var ErrMalformed = errors.New("malformed import")

// Column labels accepted per field. The Korean labels are canonical; the
// English synonyms cover spreadsheets exported by other tooling.
var columnLabels = map[string][]string{
	"status":         {"상태", "status"},
	"name":           {"프로젝트명", "name", "project"},
	"client":         {"발주처", "client"},
	"ledgerName":     {"소속대장", "ledger"},
	"salesRep":       {"영업담당", "salesRep", "sales rep"},
	"manager":        {"설계담당", "manager"},
	"contractAmount": {"계약금액", "contractAmount", "contract amount"},
	"finalCost":      {"최종실행원가", "finalCost", "final cost"},
	"createdAt":      {"생성일", "created", "createdAt"},
	"updatedAt":      {"최근수정", "updated", "updatedAt"},
}

// Parse maps labelled spreadsheet rows back into canonical projects. The
// first sheet's first row is the header; name and client columns must exist.
// Rows with neither a name nor a client are skipped as blank.
func Parse(r io.Reader) ([]project.Project, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%w: empty sheet", ErrMalformed)
	}

	columns := mapHeader(rows[0])
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("%w: project name column not found", ErrMalformed)
	}
	if _, ok := columns["client"]; !ok {
		return nil, fmt.Errorf("%w: client column not found", ErrMalformed)
	}

	now := time.Now().UTC().Truncate(time.Second)
	var projects []project.Project

	for _, row := range rows[1:] {
		name := cellAt(row, columns, "name")
		client := cellAt(row, columns, "client")
		if name == "" && client == "" {
			continue
		}

		contractAmount, _ := types.ParseWon(cellAt(row, columns, "contractAmount"))
		finalCost, _ := types.ParseWon(cellAt(row, columns, "finalCost"))

		p := project.Project{
			ID:     uuid.NewString(),
			Name:   name,
			Client: client,
			Details: project.Details{
				Status:         project.NormalizeStatus(cellAt(row, columns, "status")),
				LedgerName:     cellAt(row, columns, "ledgerName"),
				SalesRep:       cellAt(row, columns, "salesRep"),
				Manager:        cellAt(row, columns, "manager"),
				ContractAmount: contractAmount,
				FinalCost:      finalCost,
			},
			Revisions: []project.Revision{
				project.SeedRevision(uuid.NewString(), now.Format(project.DateLayout)),
			},
			Memos:    []project.Memo{},
			Progress: project.NewProgress(),
		}
		if p.Status == "" {
			p.Status = project.StatusDesign
		}
		if ts := CoerceTimestamp(cellAt(row, columns, "createdAt")); ts != "" {
			p.CreatedAt = ts
		}
		if ts := CoerceTimestamp(cellAt(row, columns, "updatedAt")); ts != "" {
			p.UpdatedAt = ts
		}

		projects = append(projects, p)
	}

	return projects, nil
}

// CoerceTimestamp converts spreadsheet date values to RFC3339: passes through
// ISO timestamps, expands date-only strings, and converts Excel date serials.
// Unparseable input coerces to empty (field left unset).
func CoerceTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	for _, layout := range []string{project.DateLayout, "2006/01/02", "01-02-06", "1/2/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}

	return ""
}

func mapHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range header {
		label := strings.TrimSpace(cell)
		for field, labels := range columnLabels {
			for _, candidate := range labels {
				if strings.EqualFold(label, candidate) {
					columns[field] = i
				}
			}
		}
	}
	return columns
}

func cellAt(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
