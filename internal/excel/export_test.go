package excel_test

import (
	"testing"

	"github.com/goldtek/quotetrack/internal/excel"
	"github.com/goldtek/quotetrack/internal/project"
)

func listFixture() []project.Project {
	return []project.Project{
		{
			ID:     "p-1",
			Name:   "배전반 신설",
			Client: "한국전력",
			Details: project.Details{
				Status:         project.StatusProduction,
				LedgerName:     "2026 수주대장",
				SalesRep:       "박대리",
				Manager:        "김과장",
				ContractAmount: 5800000,
				FinalCost:      4600000,
			},
			CreatedAt: "2026-08-01T09:00:00Z",
			UpdatedAt: "2026-08-15T09:00:00Z",
		},
	}
}

func TestProjectListSheet(t *testing.T) {
	f, err := excel.ProjectList(listFixture())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("프로젝트목록")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}

	for i, want := range excel.ListHeaders {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}

	row := rows[1]
	if row[0] != "production" || row[1] != "배전반 신설" || row[2] != "한국전력" {
		t.Errorf("data row = %v", row)
	}
	if row[8] != "2026-08-01" {
		t.Errorf("created date should be trimmed to date-only, got %q", row[8])
	}
}

func TestProjectCardNewestFirst(t *testing.T) {
	p := project.Project{
		Name:   "판넬 교체",
		Client: "발주처",
		Details: project.Details{
			ContractAmount: 5800000,
			FinalCost:      4600000,
		},
		Revisions: []project.Revision{
			{Rev: 0, Date: "2026-08-01", Amount: 0, Note: "initial creation"},
			{Rev: 1, Date: "2026-08-10", Amount: 5000000, Note: "first quote"},
			{Rev: 2, Date: "2026-08-20", Amount: 5800000, Note: "final quote"},
		},
	}

	f, err := excel.ProjectCard(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("이력")
	if err != nil {
		t.Fatal(err)
	}

	// header block (7 rows) + 3 revisions
	if len(rows) < 10 {
		t.Fatalf("rows = %d", len(rows))
	}

	// history starts after the column header row, newest revision first
	if rows[7][0] != "2" || rows[7][2] != "final quote" {
		t.Errorf("first history row = %v, want rev 2", rows[7])
	}
	if rows[9][0] != "0" {
		t.Errorf("last history row = %v, want rev 0", rows[9])
	}
}
