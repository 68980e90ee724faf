package report

import (
	"github.com/usell/billing/internal/domain/report"
	"github.com/usell/billing/internal/tabular"
	"github.com/usell/billing/internal/types"
)

// Sheet names are fixed literals; downstream reconciliation scripts key on
// them.
const (
	SheetInvoiceSummary = "Invoice Summary"
	SheetLeads          = "Leads"
	SheetDeviceDetails  = "Prepaid Device Level Details"
	SheetPostPayOrders  = "Orders"
	SheetKitsSent       = "Kits Sent"
	SheetKitsResent     = "Kits Resent"
	SheetChecks         = "Check Processed"
)

// Assembler lays the built report out onto a tabular sink. The summary sheet
// is always first; every detail sheet is emitted only when it has data.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

func (a *Assembler) WriteReport(sink tabular.Sink, rep *report.InvoiceReport, viewer types.ViewerContext) error {
	if err := a.writeSummarySheet(sink, rep.Summary); err != nil {
		return err
	}

	if len(rep.Leads) > 0 {
		if err := writeDetailSheet(sink, SheetLeads, leadColumns, rep.Leads, viewer); err != nil {
			return err
		}
	}
	if len(rep.OrderItems) > 0 {
		if err := writeDetailSheet(sink, SheetDeviceDetails, orderItemColumns, rep.OrderItems, viewer); err != nil {
			return err
		}
	}
	if len(rep.PostPayOrders) > 0 {
		if err := writeDetailSheet(sink, SheetPostPayOrders, postPayColumns, rep.PostPayOrders, viewer); err != nil {
			return err
		}
	}
	if len(rep.KitsSent) > 0 {
		if err := writeDetailSheet(sink, SheetKitsSent, kitColumns, rep.KitsSent, viewer); err != nil {
			return err
		}
	}
	if len(rep.KitsResent) > 0 {
		if err := writeDetailSheet(sink, SheetKitsResent, kitColumns, rep.KitsResent, viewer); err != nil {
			return err
		}
	}
	if len(rep.Checks) > 0 {
		if err := writeDetailSheet(sink, SheetChecks, checkColumns, rep.Checks, viewer); err != nil {
			return err
		}
	}
	return nil
}

// writeSummarySheet renders the ordered, independently conditional blocks of
// the summary sheet: header, post-pay charges, shipping-kit charges, check
// processing charges, grand total.
func (a *Assembler) writeSummarySheet(sink tabular.Sink, s *report.InvoiceSummary) error {
	sheet, err := sink.CreateSheet(SheetInvoiceSummary)
	if err != nil {
		return err
	}

	rows := [][]tabular.Cell{
		{tabular.String("Partner Name"), tabular.String(s.BuyerName), tabular.Empty(), tabular.String("Invoice:"), tabular.String(s.InvoiceNumber)},
		{tabular.String("Invoice Start Date"), tabular.String(s.PeriodStart)},
		{tabular.String("Invoice End Date"), tabular.String(s.PeriodEnd)},
		{tabular.String("Date Generated"), tabular.String(s.GeneratedAt)},
	}

	if s.PostPayOrderCount > 0 {
		rows = append(rows,
			nil,
			[]tabular.Cell{tabular.String("Charges for Post Pay Orders")},
			[]tabular.Cell{tabular.Empty(), tabular.String("Number of Orders"), tabular.Int(s.PostPayOrderCount)},
			[]tabular.Cell{tabular.Empty(), tabular.String("Net Amount Due"), tabular.Money(s.TotalPostPayCommission)},
		)
	}

	if kits := s.ShippingKits; kits != nil {
		rows = append(rows,
			nil,
			[]tabular.Cell{tabular.String("Charges for Shipping Kits")},
		)

		dateRow := []tabular.Cell{tabular.Empty(), tabular.String("Date")}
		for _, category := range kits.Categories {
			dateRow = append(dateRow, tabular.String(category))
		}
		rows = append(rows, dateRow)

		for di, day := range kits.Days {
			dayRow := []tabular.Cell{tabular.Empty(), tabular.String(day)}
			for ci := range kits.Categories {
				dayRow = append(dayRow, tabular.Int(kits.Counts[di][ci]))
			}
			rows = append(rows, dayRow)
		}

		countRow := []tabular.Cell{tabular.Empty(), tabular.String("Count")}
		priceRow := []tabular.Cell{tabular.Empty(), tabular.String("Price Per Unit")}
		dueRow := []tabular.Cell{tabular.Empty(), tabular.String("Amount Due")}
		for ci := range kits.Categories {
			countRow = append(countRow, tabular.Int(kits.CategoryCount[ci]))
			priceRow = append(priceRow, tabular.Money(kits.CategoryPricePerUnit[ci]))
			dueRow = append(dueRow, tabular.Money(kits.CategoryAmountDue[ci]))
		}
		rows = append(rows, nil, countRow, priceRow, dueRow,
			nil,
			[]tabular.Cell{tabular.Empty(), tabular.String("Net Amount Due"), tabular.Money(kits.AmountDue)},
		)
	}

	if s.CheckCount > 0 {
		rows = append(rows,
			nil,
			[]tabular.Cell{tabular.String("Charges for Check Processing")},
			[]tabular.Cell{tabular.Empty(), tabular.String("Count"), tabular.Int(s.CheckCount)},
			[]tabular.Cell{tabular.Empty(), tabular.String("Price Per Unit"), tabular.Money(s.CheckChargePerUnit)},
			[]tabular.Cell{tabular.Empty(), tabular.String("Amount Due"), tabular.Money(s.TotalCheckAmountDue)},
		)
	}

	rows = append(rows,
		nil,
		[]tabular.Cell{tabular.String("TOTAL AMOUNT DUE"), tabular.Money(s.AmountDue)},
	)

	for _, row := range rows {
		if row == nil {
			row = []tabular.Cell{}
		}
		if err := sheet.AppendRow(row); err != nil {
			return err
		}
	}
	return sheet.AutoSize()
}

func writeDetailSheet[Row any](sink tabular.Sink, name string, cols []column[Row], rows []Row, viewer types.ViewerContext) error {
	sheet, err := sink.CreateSheet(name)
	if err != nil {
		return err
	}

	visible := visibleColumns(cols, viewer)
	if err := sheet.AppendRow(headerCells(visible)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := sheet.AppendRow(rowCells(visible, row)); err != nil {
			return err
		}
	}
	return sheet.AutoSize()
}
