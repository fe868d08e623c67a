// money.go
//
// Currency formatting and the margin rule. Margin is always profit over
// revenue (division by amount, not cost).

package project

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var krw = message.NewPrinter(language.Korean)

// FormatCurrency renders an amount as grouped KRW ("₩1,234,000").
// Zero renders as "0", matching historical list displays.
func FormatCurrency(amount int64) string {
	if amount == 0 {
		return "0"
	}
	return krw.Sprintf("₩%v", number.Decimal(amount))
}

// CalculateMargin returns profit as a percentage of revenue, rounded to one
// decimal. Either input being zero yields 0.
func CalculateMargin(amount, cost int64) float64 {
	if amount == 0 || cost == 0 {
		return 0
	}
	margin := (float64(amount-cost) / float64(amount)) * 100
	return math.Round(margin*10) / 10
}

// DisplayAmount is the figure shown in list and detail views: the confirmed
// contract amount once set, otherwise the latest quote.
func DisplayAmount(p Project) int64 {
	if p.ContractAmount > 0 {
		return p.ContractAmount
	}
	if n := len(p.Revisions); n > 0 {
		return p.Revisions[n-1].Amount
	}
	return 0
}

// Profit is the absolute spread between the display amount and final cost.
func Profit(p Project) int64 {
	return DisplayAmount(p) - p.FinalCost
}
