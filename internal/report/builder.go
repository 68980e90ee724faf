package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/usell/billing/internal/domain/billing"
	"github.com/usell/billing/internal/domain/report"
	ierr "github.com/usell/billing/internal/errors"
)

const (
	// summaryDateLayout is used on the summary sheet and for matrix day keys.
	summaryDateLayout = "2006-01-02"
	// detailDateLayout is used on every detail sheet.
	detailDateLayout = "01/02/06"
)

// PriceSource supplies the per-unit charges applied on the summary sheet.
// Lookups are read-only and safe for concurrent exports.
type PriceSource interface {
	KitPricePerUnit(category string) decimal.Decimal
	CheckPricePerUnit() decimal.Decimal
}

// Builder turns raw billing entities into the computed view records the
// assembler renders. All methods are pure transformations.
type Builder struct {
	prices PriceSource
}

func NewBuilder(prices PriceSource) *Builder {
	return &Builder{prices: prices}
}

// BuildReport builds the complete in-memory view of one export. Malformed
// records anywhere in the invoice surface as a single aggregate error naming
// each offending record; nothing is silently dropped.
func (b *Builder) BuildReport(inv *billing.Invoice, period *billing.InvoicePeriod, buyer *billing.Buyer, now time.Time) (*report.InvoiceReport, error) {
	rec := &recordErrors{}

	buyerName := ""
	if buyer != nil {
		buyerName = buyer.Name
	}

	rep := &report.InvoiceReport{
		Summary:       b.BuildSummary(inv, period, buyer, now),
		Leads:         b.BuildLeadRows(inv.Leads),
		OrderItems:    b.buildOrderItemRows(inv.OrderItems(), buyerName, rec),
		PostPayOrders: b.buildPostPayRows(inv.PostPayPayments, rec),
		Checks:        b.buildCheckRows(inv.CheckRequests, rec),
	}
	rep.KitsSent, rep.KitsResent = b.partitionKits(inv.ShippingKits, rec)

	if err := rec.err(); err != nil {
		return nil, err
	}
	return rep, nil
}

// BuildSummary computes the rollup figures for the summary sheet. It never
// fails: absent collections count as empty and blank period or buyer fields
// render as empty strings, so the report always renders.
func (b *Builder) BuildSummary(inv *billing.Invoice, period *billing.InvoicePeriod, buyer *billing.Buyer, now time.Time) *report.InvoiceSummary {
	s := &report.InvoiceSummary{
		GeneratedAt:            now.Format(summaryDateLayout),
		TotalPostPayCommission: decimal.Zero,
		CheckChargePerUnit:     decimal.Zero,
		TotalCheckAmountDue:    decimal.Zero,
	}

	if buyer != nil {
		s.BuyerName = buyer.Name
	}
	if period != nil {
		s.PeriodStart = formatOptionalDate(period.StartDate)
		s.PeriodEnd = formatOptionalDate(period.EndDate)
	}
	if inv == nil {
		s.AmountDue = decimal.Zero
		return s
	}

	s.InvoiceNumber = inv.InvoiceNumber

	s.PostPayOrderCount = len(inv.PostPayPayments)
	s.TotalPostPayCommission = lo.Reduce(inv.PostPayPayments,
		func(total decimal.Decimal, p billing.PostPayCustomerPayment, _ int) decimal.Decimal {
			return total.Add(p.OrderCommission)
		}, decimal.Zero)

	s.ShippingKits = b.BuildShippingKitSummary(inv.ShippingKits)

	if n := len(inv.CheckRequests); n > 0 {
		s.CheckCount = n
		s.CheckChargePerUnit = b.prices.CheckPricePerUnit()
		s.TotalCheckAmountDue = s.CheckChargePerUnit.Mul(decimal.NewFromInt(int64(n)))
	}

	s.AmountDue = s.TotalPostPayCommission.Add(s.TotalCheckAmountDue)
	if s.ShippingKits != nil {
		s.AmountDue = s.AmountDue.Add(s.ShippingKits.AmountDue)
	}
	return s
}

// BuildLeadRows maps leads to sheet rows, preserving input order.
func (b *Builder) BuildLeadRows(leads []billing.InvoiceLead) []report.LeadRow {
	return lo.Map(leads, func(lead billing.InvoiceLead, _ int) report.LeadRow {
		return report.LeadRow{
			CustomerEmail:     lead.CustomerEmail,
			PriorCommission:   lead.PriorCommission,
			CurrentCommission: lead.CurrentCommission,
			PriorFees:         lead.PriorFees,
			CurrentFees:       lead.CurrentFees,
			BillingInterval:   lead.BillingInterval,
		}
	})
}

// BuildOrderItemRows maps device order lines to sheet rows, preserving input
// order. Malformed items surface as one aggregate error.
func (b *Builder) BuildOrderItemRows(items []billing.InvoiceLeadOrderItem, buyerName string) ([]report.OrderItemRow, error) {
	rec := &recordErrors{}
	rows := b.buildOrderItemRows(items, buyerName, rec)
	if err := rec.err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (b *Builder) buildOrderItemRows(items []billing.InvoiceLeadOrderItem, buyerName string, rec *recordErrors) []report.OrderItemRow {
	return lo.Map(items, func(item billing.InvoiceLeadOrderItem, _ int) report.OrderItemRow {
		if item.UUID == "" {
			rec.addf("order item for %s: missing uuid", item.CustomerEmail)
		}
		partnerName := item.PartnerName
		if partnerName == "" {
			partnerName = buyerName
		}
		return report.OrderItemRow{
			UUID:             item.UUID,
			CustomerEmail:    item.CustomerEmail,
			CustomerName:     item.CustomerName,
			InvoicePeriod:    item.InvoicePeriod,
			OrderDate:        rec.detailDate("order item", item.UUID, "order date", item.OrderDate),
			ProductName:      item.ProductName,
			ProductCategory:  item.ProductCategory,
			ProductCondition: item.ProductCondition,
			DeviceFee:        item.DeviceFee,
			PartnerProductID: item.PartnerProductID,
			PartnerName:      partnerName,
		}
	})
}

// PartitionKits splits kits by disposition into sent and resent rows,
// preserving input order within each group.
func (b *Builder) PartitionKits(kits []billing.ShippingKit) ([]report.KitRow, []report.KitRow, error) {
	rec := &recordErrors{}
	sent, resent := b.partitionKits(kits, rec)
	if err := rec.err(); err != nil {
		return nil, nil, err
	}
	return sent, resent, nil
}

func (b *Builder) partitionKits(kits []billing.ShippingKit, rec *recordErrors) (sent []report.KitRow, resent []report.KitRow) {
	for _, kit := range kits {
		row := report.KitRow{
			OrderNumber:     kit.OrderNumber,
			CustomerEmail:   kit.CustomerEmail,
			CustomerName:    kit.CustomerName,
			ShipDate:        rec.detailDate("kit", kit.OrderNumber, "ship date", kit.ShipDate),
			OrderDate:       rec.detailDate("kit", kit.OrderNumber, "order date", kit.OrderDate),
			ProductName:     kit.ProductName,
			ProductCategory: kit.ProductCategory,
		}
		if kit.Disposition == billing.KitDispositionResent {
			resent = append(resent, row)
		} else {
			sent = append(sent, row)
		}
	}
	return sent, resent
}

func (b *Builder) buildPostPayRows(payments []billing.PostPayCustomerPayment, rec *recordErrors) []report.PostPayRow {
	return lo.Map(payments, func(p billing.PostPayCustomerPayment, _ int) report.PostPayRow {
		return report.PostPayRow{
			OrderNumber:          p.OrderNumber,
			Email:                p.Email,
			CustomerName:         strings.ToUpper(p.FirstName + " " + p.LastName),
			OrderDate:            rec.detailDate("post-pay order", p.OrderNumber, "order date", p.OrderDate),
			PaymentDate:          rec.detailDate("post-pay order", p.OrderNumber, "payment date", p.PaymentDate),
			ProductName:          p.ProductName,
			ProductCategory:      p.ProductCategoryName,
			ProductCondition:     p.ProductConditionName,
			CommissionPercentage: percentString(p.CommissionPercentage),
			FinalBid:             p.FinalBid,
			FinalOffer:           p.FinalOffer,
			OrderCommission:      p.OrderCommission,
		}
	})
}

func (b *Builder) buildCheckRows(checks []billing.InvoiceCheckRequest, rec *recordErrors) []report.CheckRow {
	return lo.Map(checks, func(c billing.InvoiceCheckRequest, _ int) report.CheckRow {
		var checkDate string
		if c.CheckDate.IsZero() {
			rec.addf("check request %s: missing check date", c.OrderUID)
		} else {
			checkDate = c.CheckDate.Format(summaryDateLayout)
		}
		return report.CheckRow{
			OrderUID:    c.OrderUID,
			CheckNumber: c.CheckNumber,
			CheckDate:   checkDate,
			PayeeName:   c.FirstName + " " + c.LastName,
			CheckAmount: c.CheckAmount,
		}
	})
}

// percentString renders a percentage as the literal numeric text with a
// trailing percent sign, e.g. 10.5 -> "10.5%". This matches the historical
// report output; do not switch to a percent-formatted numeric cell.
func percentString(d decimal.Decimal) string {
	return d.String() + "%"
}

func formatOptionalDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(summaryDateLayout)
}

// recordErrors collects per-record format problems so the whole input is
// validated before a single aggregate error is returned.
type recordErrors struct {
	problems []string
}

func (r *recordErrors) addf(format string, args ...any) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

// detailDate formats a required detail-sheet date, recording a problem when
// the date is absent.
func (r *recordErrors) detailDate(kind, id, field string, t time.Time) string {
	if t.IsZero() {
		r.addf("%s %s: missing %s", kind, id, field)
		return ""
	}
	return t.Format(detailDateLayout)
}

func (r *recordErrors) err() error {
	if len(r.problems) == 0 {
		return nil
	}
	return ierr.NewError("invalid billing records").
		WithHintf("%d billing record(s) could not be rendered", len(r.problems)).
		WithReportableDetails(map[string]any{"records": r.problems}).
		Mark(ierr.ErrBadFormat)
}
