// export.go
//
// Read-only xlsx exports of finalized project snapshots: the list sheet and
// the per-project management card. Column labels match the spreadsheets the
// office has always circulated, which is also what the importer maps back.

package excel

import (
	"fmt"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/xuri/excelize/v2"
)

const (
	listSheet = "프로젝트목록"
	cardSheet = "이력"
)

// ListHeaders are the list sheet's column labels, oldest spreadsheet first.
var ListHeaders = []string{
	"상태", "프로젝트명", "발주처", "소속대장", "영업담당", "설계담당",
	"계약금액", "최종실행원가", "생성일", "최근수정",
}

// ProjectList renders all projects as the list spreadsheet.
func ProjectList(projects []project.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", listSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(ListHeaders))
	for i, h := range ListHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(listSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, p := range projects {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			string(p.Status),
			p.Name,
			p.Client,
			p.LedgerName,
			p.SalesRep,
			p.Manager,
			p.ContractAmount,
			p.FinalCost,
			dateOnly(p.CreatedAt),
			dateOnly(p.UpdatedAt),
		}
		if err := f.SetSheetRow(listSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ProjectCard renders one project's management card: a header block followed
// by the revision history newest-first with profit and margin columns.
func ProjectCard(p project.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", cardSheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"프로젝트 관리 카드"},
		{fmt.Sprintf("대장(소속): %s", p.LedgerName)},
		{
			fmt.Sprintf("프로젝트명: %s", p.Name),
			fmt.Sprintf("계약금액: %s", project.FormatCurrency(p.ContractAmount)),
		},
		{
			fmt.Sprintf("발주처: %s", p.Client),
			fmt.Sprintf("담당자: %s", p.Manager),
		},
		{fmt.Sprintf("최종 실행원가: %s", project.FormatCurrency(p.FinalCost))},
		{},
		{"Rev", "날짜", "수정 사유", "견적금액", "이익금", "이익률"},
	}

	// Newest first, like every history view.
	for i := len(p.Revisions) - 1; i >= 0; i-- {
		rev := p.Revisions[i]
		rows = append(rows, []interface{}{
			rev.Rev,
			rev.Date,
			rev.Note,
			rev.Amount,
			rev.Amount - p.FinalCost,
			project.CalculateMargin(rev.Amount, p.FinalCost),
		})
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(cardSheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// dateOnly trims an RFC3339 timestamp to its date part.
func dateOnly(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
