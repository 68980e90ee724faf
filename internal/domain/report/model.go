package report

import (
	"github.com/shopspring/decimal"
)

// InvoiceReport is the complete in-memory view of one invoice export. It is
// built in full before anything is written so a failed build produces zero
// output.
type InvoiceReport struct {
	Summary       *InvoiceSummary
	Leads         []LeadRow
	OrderItems    []OrderItemRow
	PostPayOrders []PostPayRow
	KitsSent      []KitRow
	KitsResent    []KitRow
	Checks        []CheckRow
}

// InvoiceSummary holds the computed figures for the summary sheet. Dates are
// pre-formatted strings; absent period bounds are empty strings.
type InvoiceSummary struct {
	BuyerName     string
	InvoiceNumber string
	PeriodStart   string
	PeriodEnd     string
	GeneratedAt   string

	PostPayOrderCount      int
	TotalPostPayCommission decimal.Decimal

	// ShippingKits is nil when the invoice has no kits; the summary sheet
	// omits the whole shipping-kit block in that case.
	ShippingKits *ShippingKitSummary

	CheckCount          int
	CheckChargePerUnit  decimal.Decimal
	TotalCheckAmountDue decimal.Decimal

	// AmountDue is the grand total across the post-pay, shipping-kit and
	// check-processing blocks.
	AmountDue decimal.Decimal
}

// LeadRow is one row of the "Leads" sheet.
type LeadRow struct {
	CustomerEmail     string
	PriorCommission   decimal.Decimal
	CurrentCommission decimal.Decimal
	PriorFees         decimal.Decimal
	CurrentFees       decimal.Decimal
	BillingInterval   string
}

// OrderItemRow is one row of the "Prepaid Device Level Details" sheet.
type OrderItemRow struct {
	UUID             string
	CustomerEmail    string
	CustomerName     string
	InvoicePeriod    string
	OrderDate        string
	ProductName      string
	ProductCategory  string
	ProductCondition string
	DeviceFee        decimal.Decimal
	PartnerProductID string
	PartnerName      string
}

// PostPayRow is one row of the "Orders" sheet.
type PostPayRow struct {
	OrderNumber          string
	Email                string
	CustomerName         string
	OrderDate            string
	PaymentDate          string
	ProductName          string
	ProductCategory      string
	ProductCondition     string
	CommissionPercentage string
	FinalBid             decimal.Decimal
	FinalOffer           decimal.Decimal
	OrderCommission      decimal.Decimal
}

// KitRow is one row of the "Kits Sent" or "Kits Resent" sheet.
type KitRow struct {
	OrderNumber     string
	CustomerEmail   string
	CustomerName    string
	ShipDate        string
	OrderDate       string
	ProductName     string
	ProductCategory string
}

// CheckRow is one row of the "Check Processed" sheet.
type CheckRow struct {
	OrderUID    string
	CheckNumber string
	CheckDate   string
	PayeeName   string
	CheckAmount decimal.Decimal
}
