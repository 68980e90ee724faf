package report

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usell/billing/internal/domain/billing"
	ierr "github.com/usell/billing/internal/errors"
)

// stubPrices is a fixed-price source for builder tests.
type stubPrices struct {
	kit   decimal.Decimal
	check decimal.Decimal
}

func (p stubPrices) KitPricePerUnit(category string) decimal.Decimal { return p.kit }
func (p stubPrices) CheckPricePerUnit() decimal.Decimal              { return p.check }

func testBuilder() *Builder {
	return NewBuilder(stubPrices{
		kit:   decimal.RequireFromString("5.00"),
		check: decimal.RequireFromString("1.50"),
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildSummaryEmptyInvoice(t *testing.T) {
	b := testBuilder()
	inv := &billing.Invoice{ID: "inv_1", InvoiceNumber: "INV-001"}

	s := b.BuildSummary(inv, nil, nil, date(2024, 3, 15))

	assert.Equal(t, "INV-001", s.InvoiceNumber)
	assert.Equal(t, "", s.BuyerName)
	assert.Equal(t, "", s.PeriodStart)
	assert.Equal(t, "", s.PeriodEnd)
	assert.Equal(t, "2024-03-15", s.GeneratedAt)
	assert.Equal(t, 0, s.PostPayOrderCount)
	assert.Nil(t, s.ShippingKits)
	assert.Equal(t, 0, s.CheckCount)
	assert.True(t, s.AmountDue.IsZero(), "empty invoice must total zero, got %s", s.AmountDue)
}

func TestBuildSummaryCommissionTotals(t *testing.T) {
	b := testBuilder()
	tests := []struct {
		name        string
		commissions []string
		want        string
	}{
		{"no orders", nil, "0"},
		{"single order", []string{"12.34"}, "12.34"},
		{"cent precision", []string{"0.01", "0.02", "0.03", "0.04", "0.05"}, "0.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &billing.Invoice{ID: "inv_1"}
			for _, c := range tt.commissions {
				inv.PostPayPayments = append(inv.PostPayPayments, billing.PostPayCustomerPayment{
					OrderCommission: decimal.RequireFromString(c),
				})
			}

			s := b.BuildSummary(inv, nil, nil, date(2024, 1, 1))

			assert.Equal(t, len(tt.commissions), s.PostPayOrderCount)
			assert.True(t, s.TotalPostPayCommission.Equal(decimal.RequireFromString(tt.want)),
				"want %s got %s", tt.want, s.TotalPostPayCommission)
			assert.True(t, s.AmountDue.Equal(s.TotalPostPayCommission))
		})
	}
}

func TestBuildSummaryCheckCharges(t *testing.T) {
	b := testBuilder()
	inv := &billing.Invoice{
		ID: "inv_1",
		CheckRequests: []billing.InvoiceCheckRequest{
			{OrderUID: "c1", CheckDate: date(2024, 2, 1)},
			{OrderUID: "c2", CheckDate: date(2024, 2, 2)},
			{OrderUID: "c3", CheckDate: date(2024, 2, 3)},
		},
	}

	s := b.BuildSummary(inv, nil, nil, date(2024, 3, 1))

	assert.Equal(t, 3, s.CheckCount)
	assert.Equal(t, "1.5", s.CheckChargePerUnit.String())
	assert.Equal(t, "4.5", s.TotalCheckAmountDue.String())
	assert.True(t, s.AmountDue.Equal(s.TotalCheckAmountDue))
}

func TestBuildSummaryPeriodDates(t *testing.T) {
	b := testBuilder()
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)
	period := &billing.InvoicePeriod{InvoiceID: "inv_1", StartDate: &start, EndDate: &end}

	s := b.BuildSummary(&billing.Invoice{ID: "inv_1"}, period, &billing.Buyer{Name: "Acme"}, date(2024, 2, 1))

	assert.Equal(t, "Acme", s.BuyerName)
	assert.Equal(t, "2024-01-01", s.PeriodStart)
	assert.Equal(t, "2024-01-31", s.PeriodEnd)
}

func TestBuildLeadRowsPercentAndMoney(t *testing.T) {
	b := testBuilder()
	rows := b.BuildLeadRows([]billing.InvoiceLead{
		{
			CustomerEmail:     "a@example.com",
			PriorFees:         decimal.RequireFromString("10.5"),
			CurrentFees:       decimal.RequireFromString("12"),
			PriorCommission:   decimal.RequireFromString("100.00"),
			CurrentCommission: decimal.RequireFromString("125.50"),
			BillingInterval:   "monthly",
		},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "a@example.com", rows[0].CustomerEmail)
	assert.Equal(t, "10.5%", percentString(rows[0].PriorFees))
	assert.Equal(t, "12%", percentString(rows[0].CurrentFees))
	assert.Equal(t, "monthly", rows[0].BillingInterval)
}

func TestBuildOrderItemRowsPreservesOrder(t *testing.T) {
	b := testBuilder()
	items := []billing.InvoiceLeadOrderItem{
		{UUID: "u3", CustomerEmail: "c@example.com", OrderDate: date(2024, 1, 3)},
		{UUID: "u1", CustomerEmail: "a@example.com", OrderDate: date(2024, 1, 1)},
		{UUID: "u2", CustomerEmail: "b@example.com", OrderDate: date(2024, 1, 2)},
	}

	rows, err := b.BuildOrderItemRows(items, "Acme")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "u3", rows[0].UUID)
	assert.Equal(t, "u1", rows[1].UUID)
	assert.Equal(t, "u2", rows[2].UUID)
	assert.Equal(t, "01/03/24", rows[0].OrderDate)
}

func TestBuildOrderItemRowsPartnerNameFallback(t *testing.T) {
	b := testBuilder()
	items := []billing.InvoiceLeadOrderItem{
		{UUID: "u1", OrderDate: date(2024, 1, 1), PartnerName: "Rebrand Inc"},
		{UUID: "u2", OrderDate: date(2024, 1, 1)},
	}

	rows, err := b.BuildOrderItemRows(items, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Rebrand Inc", rows[0].PartnerName)
	assert.Equal(t, "Acme", rows[1].PartnerName)
}

func TestBuildReportAggregatesFormatErrors(t *testing.T) {
	b := testBuilder()
	inv := &billing.Invoice{
		ID: "inv_1",
		Leads: []billing.InvoiceLead{
			{
				ID: "l1",
				OrderItems: []billing.InvoiceLeadOrderItem{
					{UUID: "", CustomerEmail: "a@example.com", OrderDate: date(2024, 1, 1)},
					{UUID: "u2", CustomerEmail: "b@example.com"}, // zero order date
				},
			},
		},
		CheckRequests: []billing.InvoiceCheckRequest{
			{OrderUID: "c1"}, // zero check date
		},
	}

	rep, err := b.BuildReport(inv, nil, nil, date(2024, 2, 1))
	require.Error(t, err)
	assert.Nil(t, rep, "a report with bad records must not be returned at all")
	assert.True(t, ierr.IsBadFormat(err))

	// every offending record is named in one pass
	var payload string
	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, p := range sdp.SafeDetails {
			payload += p
		}
	}
	assert.Contains(t, payload, "a@example.com")
	assert.Contains(t, payload, "u2")
	assert.Contains(t, payload, "c1")
}

func TestBuildReportWellFormed(t *testing.T) {
	b := testBuilder()
	inv := &billing.Invoice{
		ID:            "inv_1",
		InvoiceNumber: "INV-042",
		Leads: []billing.InvoiceLead{
			{ID: "l1", CustomerEmail: "a@example.com"},
		},
		ShippingKits: []billing.ShippingKit{
			{OrderNumber: "k1", ShipDate: date(2024, 1, 5), OrderDate: date(2024, 1, 2), ProductCategory: "Phones", Disposition: billing.KitDispositionSent},
			{OrderNumber: "k2", ShipDate: date(2024, 1, 6), OrderDate: date(2024, 1, 3), ProductCategory: "Phones", Disposition: billing.KitDispositionResent},
		},
		PostPayPayments: []billing.PostPayCustomerPayment{
			{
				OrderNumber:          "o1",
				FirstName:            "Jane",
				LastName:             "Doe",
				OrderDate:            date(2024, 1, 4),
				PaymentDate:          date(2024, 1, 10),
				CommissionPercentage: decimal.RequireFromString("10.5"),
				OrderCommission:      decimal.RequireFromString("25.00"),
			},
		},
	}

	rep, err := b.BuildReport(inv, nil, &billing.Buyer{Name: "Acme"}, date(2024, 2, 1))
	require.NoError(t, err)

	assert.Len(t, rep.Leads, 1)
	assert.Len(t, rep.KitsSent, 1)
	assert.Len(t, rep.KitsResent, 1)
	assert.Empty(t, rep.Checks)

	require.Len(t, rep.PostPayOrders, 1)
	assert.Equal(t, "JANE DOE", rep.PostPayOrders[0].CustomerName)
	assert.Equal(t, "10.5%", rep.PostPayOrders[0].CommissionPercentage)
	assert.Equal(t, "01/04/24", rep.PostPayOrders[0].OrderDate)
	assert.Equal(t, "01/10/24", rep.PostPayOrders[0].PaymentDate)
}

func TestPartitionKitsByDisposition(t *testing.T) {
	b := testBuilder()
	kits := []billing.ShippingKit{
		{OrderNumber: "k1", ShipDate: date(2024, 1, 1), OrderDate: date(2024, 1, 1), Disposition: billing.KitDispositionSent},
		{OrderNumber: "k2", ShipDate: date(2024, 1, 2), OrderDate: date(2024, 1, 1), Disposition: billing.KitDispositionResent},
		{OrderNumber: "k3", ShipDate: date(2024, 1, 3), OrderDate: date(2024, 1, 2), Disposition: billing.KitDispositionSent},
	}

	sent, resent, err := b.PartitionKits(kits)
	require.NoError(t, err)
	require.Len(t, sent, 2)
	require.Len(t, resent, 1)
	assert.Equal(t, "k1", sent[0].OrderNumber)
	assert.Equal(t, "k3", sent[1].OrderNumber)
	assert.Equal(t, "k2", resent[0].OrderNumber)
	assert.Equal(t, "01/01/24", sent[0].ShipDate)
}

func TestBuildCheckRowsPayeeNotUppercased(t *testing.T) {
	b := testBuilder()
	rec := &recordErrors{}
	rows := b.buildCheckRows([]billing.InvoiceCheckRequest{
		{OrderUID: "c1", CheckNumber: "1001", CheckDate: date(2024, 1, 15), FirstName: "Jane", LastName: "Doe", CheckAmount: decimal.RequireFromString("42.00")},
	}, rec)

	require.NoError(t, rec.err())
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0].PayeeName)
	assert.Equal(t, "2024-01-15", rows[0].CheckDate)
}
