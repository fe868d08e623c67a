// stats.go
//
// Derived dashboard figures. These are recomputed from project records on
// every read; nothing here is cached server-side.

package project

import (
	"math"
	"regexp"
	"sort"
	"strconv"
)

// Stats summarizes a list of projects for the dashboard.
type Stats struct {
	Ongoing        int     `json:"ongoing"`
	Won            int     `json:"won"`
	TotalWonAmount int64   `json:"totalWonAmount"`
	AvgMargin      float64 `json:"avgMargin"`
}

// Won reports whether a project counts as a win: the contract milestone is
// stamped, or the status has reached the contract stage.
func Won(p Project) bool {
	if p.Progress.Done(StageContract) {
		return true
	}
	return p.Status.AtOrPast(StatusContract)
}

// Ongoing reports whether a project is still in flight.
func Ongoing(p Project) bool {
	return p.Status != StatusComplete && p.Status != StatusHold
}

// CalculateStats computes dashboard figures over the given projects. Average
// margin is total won profit over total won amount, one decimal.
func CalculateStats(projects []Project) Stats {
	var s Stats
	var totalProfit int64

	for _, p := range projects {
		if Ongoing(p) {
			s.Ongoing++
		}
		if Won(p) {
			s.Won++
			amount := DisplayAmount(p)
			s.TotalWonAmount += amount
			totalProfit += amount - p.FinalCost
		}
	}

	if s.TotalWonAmount > 0 {
		margin := (float64(totalProfit) / float64(s.TotalWonAmount)) * 100
		s.AvgMargin = math.Round(margin*10) / 10
	}

	return s
}

var yearDigits = regexp.MustCompile(`(\d{4})`)

// Year extracts the project's year from createdAt, falling back to the first
// four-digit run in the display code. Returns 0 when neither yields one.
func Year(p Project) int {
	if len(p.CreatedAt) >= 4 {
		if y, err := strconv.Atoi(p.CreatedAt[:4]); err == nil && y > 0 {
			return y
		}
	}
	if m := yearDigits.FindString(p.ProjectIDDisplay); m != "" {
		y, _ := strconv.Atoi(m)
		return y
	}
	return 0
}

// Years returns the sorted distinct years across the projects.
func Years(projects []Project) []int {
	seen := make(map[int]struct{})
	for _, p := range projects {
		if y := Year(p); y != 0 {
			seen[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// NextActiveIndex is the deterministic memo re-selection rule after deleting
// the memo at deletedIndex: clamp to the new tail, or -1 when the list is
// empty (new-draft state).
func NextActiveIndex(deletedIndex, newLength int) int {
	if newLength <= 0 {
		return -1
	}
	if deletedIndex > newLength-1 {
		return newLength - 1
	}
	return deletedIndex
}
