// refine.go
//
// Pure text transforms for revision notes and project commentary. Nothing in
// this package persists anything; the caller decides whether to save the
// refined text.

package analysis

import (
	"fmt"
	"strings"

	"github.com/goldtek/quotetrack/internal/project"
)

// RefineNote normalizes a free-text revision note: trims, collapses runs of
// whitespace, and ensures terminal punctuation. Empty input stays empty.
func RefineNote(note string) string {
	trimmed := strings.Join(strings.Fields(note), " ")
	if trimmed == "" {
		return ""
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return trimmed
	}
	return trimmed + "."
}

// AnalyzeProject produces a short margin commentary for one project. The
// thresholds mirror what the sales office considers thin, low, and
// comfortable margins.
func AnalyzeProject(p project.Project) string {
	amount := project.DisplayAmount(p)
	cost := p.FinalCost
	margin := project.CalculateMargin(amount, cost)

	lines := []string{
		fmt.Sprintf("Project: %s", orDash(p.Name)),
		fmt.Sprintf("Contract amount: %s, final cost: %s, margin: %.1f%%",
			project.FormatCurrency(amount), project.FormatCurrency(cost), margin),
	}

	if p.FinalCost == 0 {
		lines = append(lines, "Final cost has not been entered. Enter the actual cost against the quote for a more accurate analysis.")
	}

	switch {
	case margin < 5:
		lines = append(lines, "Margin is very thin. Re-check major material and labor costs and whether extra charges can be passed through.")
	case margin < 10:
		lines = append(lines, "Margin is on the low side. Re-confirm risk factors such as scope changes and optional extras.")
	case margin < 20:
		lines = append(lines, "Margin is average. Focus on schedule management and the payment collection plan.")
	default:
		lines = append(lines, "Margin is comfortable. Keep a buffer for client change requests while managing quality and delivery.")
	}

	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
