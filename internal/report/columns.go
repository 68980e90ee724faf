package report

import (
	"github.com/usell/billing/internal/domain/report"
	"github.com/usell/billing/internal/tabular"
	"github.com/usell/billing/internal/types"
)

// column declares one detail-sheet column: its header literal, the contexts
// it is visible in, and how a row value maps to a cell. Header and data rows
// both derive from the same declaration, so the two can never drift apart
// when a column is suppressed.
type column[Row any] struct {
	header string
	// buyerHidden columns are omitted entirely for buyer-context exports,
	// shifting later columns left in both header and data rows.
	buyerHidden bool
	cell        func(Row) tabular.Cell
}

func visibleColumns[Row any](cols []column[Row], viewer types.ViewerContext) []column[Row] {
	if !viewer.IsBuyer() {
		return cols
	}
	visible := make([]column[Row], 0, len(cols))
	for _, c := range cols {
		if !c.buyerHidden {
			visible = append(visible, c)
		}
	}
	return visible
}

func headerCells[Row any](cols []column[Row]) []tabular.Cell {
	cells := make([]tabular.Cell, len(cols))
	for i, c := range cols {
		cells[i] = tabular.Header(c.header)
	}
	return cells
}

func rowCells[Row any](cols []column[Row], row Row) []tabular.Cell {
	cells := make([]tabular.Cell, len(cols))
	for i, c := range cols {
		cells[i] = c.cell(row)
	}
	return cells
}

var leadColumns = []column[report.LeadRow]{
	{header: "Email Address", cell: func(r report.LeadRow) tabular.Cell { return tabular.String(r.CustomerEmail) }},
	{header: "Prior Fees", cell: func(r report.LeadRow) tabular.Cell { return tabular.String(percentString(r.PriorFees)) }},
	{header: "Current Fees", cell: func(r report.LeadRow) tabular.Cell { return tabular.String(percentString(r.CurrentFees)) }},
	{header: "Prior Invoiced Amount", cell: func(r report.LeadRow) tabular.Cell { return tabular.Money(r.PriorCommission) }},
	{header: "Current Invoice Amount", cell: func(r report.LeadRow) tabular.Cell { return tabular.Money(r.CurrentCommission) }},
	{header: "Customer Billing Interval", cell: func(r report.LeadRow) tabular.Cell { return tabular.String(r.BillingInterval) }},
}

var orderItemColumns = []column[report.OrderItemRow]{
	{header: "UUID", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.UUID) }},
	{header: "Email Address", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.CustomerEmail) }},
	{header: "User Name", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.CustomerName) }},
	{header: "Invoice Period", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.InvoicePeriod) }},
	{header: "Order Date", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.OrderDate) }},
	{header: "Product Name", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.ProductName) }},
	{header: "Product Category", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.ProductCategory) }},
	{header: "Product Condition", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.ProductCondition) }},
	{header: "Device Fee", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.Money(r.DeviceFee) }},
	{header: "Partner Product Id", buyerHidden: true, cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.PartnerProductID) }},
	{header: "Partner Name", cell: func(r report.OrderItemRow) tabular.Cell { return tabular.String(r.PartnerName) }},
}

var postPayColumns = []column[report.PostPayRow]{
	{header: "UUID", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.OrderNumber) }},
	{header: "Email Address", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.Email) }},
	{header: "User Name", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.CustomerName) }},
	{header: "Order Date", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.OrderDate) }},
	{header: "Payment Date", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.PaymentDate) }},
	{header: "Product Name", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.ProductName) }},
	{header: "Product Category", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.ProductCategory) }},
	{header: "Product Condition", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.ProductCondition) }},
	{header: "Order Commission Percentage", cell: func(r report.PostPayRow) tabular.Cell { return tabular.String(r.CommissionPercentage) }},
	{header: "Bid", cell: func(r report.PostPayRow) tabular.Cell { return tabular.Money(r.FinalBid) }},
	{header: "Offer", cell: func(r report.PostPayRow) tabular.Cell { return tabular.Money(r.FinalOffer) }},
	{header: "Commission Amount Due", cell: func(r report.PostPayRow) tabular.Cell { return tabular.Money(r.OrderCommission) }},
}

var kitColumns = []column[report.KitRow]{
	{header: "UUID", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.OrderNumber) }},
	{header: "Email", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.CustomerEmail) }},
	{header: "Customer Name", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.CustomerName) }},
	{header: "Ship Date", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.ShipDate) }},
	{header: "Order Date", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.OrderDate) }},
	{header: "Product Name", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.ProductName) }},
	{header: "Category Name", cell: func(r report.KitRow) tabular.Cell { return tabular.String(r.ProductCategory) }},
}

var checkColumns = []column[report.CheckRow]{
	{header: "UUID", cell: func(r report.CheckRow) tabular.Cell { return tabular.String(r.OrderUID) }},
	{header: "Check Number", cell: func(r report.CheckRow) tabular.Cell { return tabular.String(r.CheckNumber) }},
	{header: "Check Date", cell: func(r report.CheckRow) tabular.Cell { return tabular.String(r.CheckDate) }},
	{header: "Customer Name", cell: func(r report.CheckRow) tabular.Cell { return tabular.String(r.PayeeName) }},
	{header: "Amount", cell: func(r report.CheckRow) tabular.Cell { return tabular.Money(r.CheckAmount) }},
}
