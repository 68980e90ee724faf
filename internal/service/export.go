package service

import (
	"context"
	"io"
	"time"

	ierr "github.com/usell/billing/internal/errors"
	"github.com/usell/billing/internal/report"
	"github.com/usell/billing/internal/tabular"
	"github.com/usell/billing/internal/types"
)

// InvoiceExportService produces the multi-sheet invoice workbook for one
// invoice and writes it to the caller supplied sink.
type InvoiceExportService interface {
	// ExportInvoiceExcel writes the complete workbook to w, or writes
	// nothing at all when any part of the export fails.
	ExportInvoiceExcel(ctx context.Context, invoiceID string, viewer types.ViewerContext, w io.Writer) error
	// ExportFilename returns the download filename for an invoice export.
	ExportFilename(ctx context.Context, invoiceID string) (string, error)
}

type invoiceExportService struct {
	ServiceParams
	builder   *report.Builder
	assembler *report.Assembler
}

func NewInvoiceExportService(params ServiceParams) InvoiceExportService {
	return &invoiceExportService{
		ServiceParams: params,
		builder:       report.NewBuilder(params.Config.Pricing),
		assembler:     report.NewAssembler(),
	}
}

func (s *invoiceExportService) ExportInvoiceExcel(ctx context.Context, invoiceID string, viewer types.ViewerContext, w io.Writer) error {
	invoice, err := s.BillingRepo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	buyer, err := s.BillingRepo.GetBuyer(ctx, invoice.BuyerID)
	if err != nil {
		return err
	}
	period, err := s.BillingRepo.GetInvoicePeriod(ctx, invoiceID)
	if err != nil && !ierr.IsNotFound(err) {
		return err
	}

	// Power buyers always get the reduced buyer layout, whoever requested
	// the export.
	if buyer.PowerBuyer {
		viewer = types.ViewerBuyer
	}

	// Build the full view model before the sink sees a single write so a
	// failed build produces zero output instead of a truncated workbook.
	rep, err := s.builder.BuildReport(invoice, period, buyer, time.Now().UTC())
	if err != nil {
		s.Logger.Errorw("failed to build invoice report",
			"error", err,
			"invoice_id", invoiceID)
		return err
	}

	sink, err := tabular.NewExcelSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := s.assembler.WriteReport(sink, rep, viewer); err != nil {
		s.Logger.Errorw("failed to lay out invoice report",
			"error", err,
			"invoice_id", invoiceID)
		return err
	}

	if err := sink.Flush(w); err != nil {
		return err
	}

	s.Logger.Infow("exported invoice workbook",
		"request_id", types.GetRequestID(ctx),
		"invoice_id", invoiceID,
		"invoice_number", invoice.InvoiceNumber,
		"viewer", viewer,
		"leads", len(rep.Leads),
		"order_items", len(rep.OrderItems),
		"post_pay_orders", len(rep.PostPayOrders),
		"kits_sent", len(rep.KitsSent),
		"kits_resent", len(rep.KitsResent),
		"checks", len(rep.Checks))
	return nil
}

func (s *invoiceExportService) ExportFilename(ctx context.Context, invoiceID string) (string, error) {
	invoice, err := s.BillingRepo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	name := invoice.InvoiceNumber
	if name == "" {
		name = invoice.ID
	}
	return "invoice-" + name + ".xlsx", nil
}
