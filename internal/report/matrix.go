package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/usell/billing/internal/domain/billing"
	"github.com/usell/billing/internal/domain/report"
)

// BuildShippingKitSummary tallies kit shipments into the category/day matrix
// and derives the per-category charges. An empty kit collection produces no
// summary at all, not a zero-row one.
//
// Categories keep first-seen input order; days sort ascending. Day keys use
// the summary date layout, so lexical order is chronological order and the
// result is identical for identical input.
func (b *Builder) BuildShippingKitSummary(kits []billing.ShippingKit) *report.ShippingKitSummary {
	if len(kits) == 0 {
		return nil
	}

	type shipment struct {
		day      string
		category string
	}

	var categories []string
	catIdx := make(map[string]int)
	daySeen := make(map[string]bool)
	shipments := make([]shipment, 0, len(kits))

	for _, kit := range kits {
		if _, ok := catIdx[kit.ProductCategory]; !ok {
			catIdx[kit.ProductCategory] = len(categories)
			categories = append(categories, kit.ProductCategory)
		}
		day := kit.ShipDate.Format(summaryDateLayout)
		daySeen[day] = true
		shipments = append(shipments, shipment{day: day, category: kit.ProductCategory})
	}

	days := make([]string, 0, len(daySeen))
	for day := range daySeen {
		days = append(days, day)
	}
	sort.Strings(days)

	dayIdx := make(map[string]int, len(days))
	for i, day := range days {
		dayIdx[day] = i
	}

	// Dense matrix: every (day, category) pair holds an explicit count,
	// zero included.
	counts := make([][]int, len(days))
	for i := range counts {
		counts[i] = make([]int, len(categories))
	}
	for _, s := range shipments {
		counts[dayIdx[s.day]][catIdx[s.category]]++
	}

	summary := &report.ShippingKitSummary{
		Categories:           categories,
		Days:                 days,
		Counts:               counts,
		CategoryCount:        make([]int, len(categories)),
		CategoryPricePerUnit: make([]decimal.Decimal, len(categories)),
		CategoryAmountDue:    make([]decimal.Decimal, len(categories)),
		AmountDue:            decimal.Zero,
	}

	for ci := range categories {
		for di := range days {
			summary.CategoryCount[ci] += counts[di][ci]
		}
		summary.CategoryPricePerUnit[ci] = b.prices.KitPricePerUnit(categories[ci])
		summary.CategoryAmountDue[ci] = summary.CategoryPricePerUnit[ci].
			Mul(decimal.NewFromInt(int64(summary.CategoryCount[ci])))
		summary.AmountDue = summary.AmountDue.Add(summary.CategoryAmountDue[ci])
	}

	return summary
}
