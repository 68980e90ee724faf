package report

import (
	"github.com/shopspring/decimal"
)

// ShippingKitSummary is the category/day matrix of kit shipments plus the
// derived per-category totals and charges.
//
// Categories keep first-seen input order and Days are sorted ascending, so
// two builds over the same input always lay out identically. Counts is dense:
// Counts[i][j] is the number of kits shipped on Days[i] in Categories[j], and
// a (day, category) pair that never occurred in the input holds an explicit
// zero rather than a missing entry.
type ShippingKitSummary struct {
	Categories []string
	Days       []string
	Counts     [][]int

	// All aligned with Categories.
	CategoryCount        []int
	CategoryPricePerUnit []decimal.Decimal
	CategoryAmountDue    []decimal.Decimal

	AmountDue decimal.Decimal
}

// Count returns the number of kits shipped on day in category. Unknown days
// or categories read as zero.
func (s *ShippingKitSummary) Count(day, category string) int {
	di, ci := -1, -1
	for i, d := range s.Days {
		if d == day {
			di = i
			break
		}
	}
	for i, c := range s.Categories {
		if c == category {
			ci = i
			break
		}
	}
	if di < 0 || ci < 0 {
		return 0
	}
	return s.Counts[di][ci]
}

// TotalCount returns the number of kits across all days and categories.
func (s *ShippingKitSummary) TotalCount() int {
	total := 0
	for _, n := range s.CategoryCount {
		total += n
	}
	return total
}
