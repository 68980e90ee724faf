package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usell/billing/internal/domain/billing"
)

func kit(orderNumber, category string, shipDate time.Time) billing.ShippingKit {
	return billing.ShippingKit{
		OrderNumber:     orderNumber,
		ShipDate:        shipDate,
		OrderDate:       shipDate,
		ProductCategory: category,
		Disposition:     billing.KitDispositionSent,
	}
}

func TestBuildShippingKitSummaryEmpty(t *testing.T) {
	b := testBuilder()
	assert.Nil(t, b.BuildShippingKitSummary(nil))
	assert.Nil(t, b.BuildShippingKitSummary([]billing.ShippingKit{}))
}

func TestBuildShippingKitSummaryDenseCounts(t *testing.T) {
	b := testBuilder()
	kits := []billing.ShippingKit{
		kit("k1", "Phones", date(2024, 1, 2)),
		kit("k2", "Tablets", date(2024, 1, 1)),
		kit("k3", "Phones", date(2024, 1, 2)),
		kit("k4", "Phones", date(2024, 1, 1)),
	}

	s := b.BuildShippingKitSummary(kits)
	require.NotNil(t, s)

	// categories keep first-seen order, days sort ascending
	assert.Equal(t, []string{"Phones", "Tablets"}, s.Categories)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, s.Days)

	assert.Equal(t, 1, s.Count("2024-01-01", "Phones"))
	assert.Equal(t, 1, s.Count("2024-01-01", "Tablets"))
	assert.Equal(t, 2, s.Count("2024-01-02", "Phones"))

	// the (day, category) cell with no shipments holds an explicit zero
	assert.Equal(t, 0, s.Count("2024-01-02", "Tablets"))
	assert.Equal(t, 0, s.Count("2024-01-03", "Phones"))
	assert.Equal(t, 0, s.Count("2024-01-01", "Laptops"))

	assert.Equal(t, []int{3, 1}, s.CategoryCount)
	assert.Equal(t, 4, s.TotalCount())
}

func TestBuildShippingKitSummaryCharges(t *testing.T) {
	b := NewBuilder(stubPrices{
		kit:   decimal.RequireFromString("2.50"),
		check: decimal.Zero,
	})
	kits := []billing.ShippingKit{
		kit("k1", "Phones", date(2024, 1, 1)),
		kit("k2", "Phones", date(2024, 1, 2)),
		kit("k3", "Tablets", date(2024, 1, 1)),
	}

	s := b.BuildShippingKitSummary(kits)
	require.NotNil(t, s)

	assert.Equal(t, "2.5", s.CategoryPricePerUnit[0].String())
	assert.Equal(t, "5", s.CategoryAmountDue[0].String())
	assert.Equal(t, "2.5", s.CategoryAmountDue[1].String())
	assert.Equal(t, "7.5", s.AmountDue.String())
}

func TestBuildShippingKitSummaryDeterministic(t *testing.T) {
	b := testBuilder()
	kits := []billing.ShippingKit{
		kit("k1", "Phones", date(2024, 1, 3)),
		kit("k2", "Tablets", date(2024, 1, 1)),
		kit("k3", "Laptops", date(2024, 1, 2)),
		kit("k4", "Phones", date(2024, 1, 1)),
	}

	first := b.BuildShippingKitSummary(kits)
	for i := 0; i < 50; i++ {
		next := b.BuildShippingKitSummary(kits)
		assert.Equal(t, first.Categories, next.Categories)
		assert.Equal(t, first.Days, next.Days)
		assert.Equal(t, first.Counts, next.Counts)
	}
}
