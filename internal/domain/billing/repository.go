package billing

import "context"

// Repository provides read-only access to the billing entities behind an
// invoice export. The export path never writes.
type Repository interface {
	// GetInvoice returns the invoice with its leads, order items, kits,
	// check requests and post-pay payments loaded.
	GetInvoice(ctx context.Context, id string) (*Invoice, error)
	// GetBuyer returns the buyer an invoice is issued to.
	GetBuyer(ctx context.Context, id string) (*Buyer, error)
	// GetInvoicePeriod returns the billing period covered by an invoice.
	GetInvoicePeriod(ctx context.Context, invoiceID string) (*InvoicePeriod, error)
}
