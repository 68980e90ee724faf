package repository

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/usell/billing/internal/domain/billing"
	ierr "github.com/usell/billing/internal/errors"
	"github.com/usell/billing/internal/logger"
	"github.com/usell/billing/internal/postgres"
)

type billingRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewBillingRepository returns the sqlx-backed read-only billing repository.
func NewBillingRepository(db *postgres.DB, logger *logger.Logger) billing.Repository {
	return &billingRepository{db: db, logger: logger}
}

func (r *billingRepository) GetInvoice(ctx context.Context, id string) (*billing.Invoice, error) {
	var invoice billing.Invoice
	err := r.db.GetContext(ctx, &invoice,
		`SELECT id, invoice_number, buyer_id FROM billing_invoices WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("invoice not found").
				WithHintf("invoice %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to load invoice").
			Mark(ierr.ErrDatabase)
	}

	if err := r.loadLeads(ctx, &invoice); err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &invoice.ShippingKits,
		`SELECT order_number, customer_email, customer_name, ship_date, order_date,
		        product_name, product_category, disposition
		   FROM shipping_kits
		  WHERE invoice_id = $1
		  ORDER BY ship_date, order_number`, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load shipping kits").
			Mark(ierr.ErrDatabase)
	}

	err = r.db.SelectContext(ctx, &invoice.CheckRequests,
		`SELECT order_uid, check_number, check_date, first_name, last_name, check_amount
		   FROM invoice_check_requests
		  WHERE invoice_id = $1
		  ORDER BY check_date, check_number`, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load check requests").
			Mark(ierr.ErrDatabase)
	}

	err = r.db.SelectContext(ctx, &invoice.PostPayPayments,
		`SELECT order_number, email, first_name, last_name, order_date, payment_date,
		        product_name, product_category_name, product_condition_name,
		        commission_percentage, final_bid, final_offer, order_commission
		   FROM post_pay_customer_payments
		  WHERE invoice_id = $1
		  ORDER BY order_date, order_number`, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load post-pay payments").
			Mark(ierr.ErrDatabase)
	}

	return &invoice, nil
}

func (r *billingRepository) loadLeads(ctx context.Context, invoice *billing.Invoice) error {
	err := r.db.SelectContext(ctx, &invoice.Leads,
		`SELECT id, customer_email, prior_commission, current_commission,
		        prior_fees, current_fees, billing_interval
		   FROM invoice_leads
		  WHERE invoice_id = $1
		  ORDER BY id`, invoice.ID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to load invoice leads").
			Mark(ierr.ErrDatabase)
	}
	if len(invoice.Leads) == 0 {
		return nil
	}

	var items []billing.InvoiceLeadOrderItem
	err = r.db.SelectContext(ctx, &items,
		`SELECT i.uuid, i.lead_id, i.customer_email, i.customer_name, i.invoice_period,
		        i.order_date, i.product_name, i.product_category, i.product_condition,
		        i.device_fee, i.partner_product_id, i.partner_name
		   FROM invoice_lead_order_items i
		   JOIN invoice_leads l ON l.id = i.lead_id
		  WHERE l.invoice_id = $1
		  ORDER BY l.id, i.uuid`, invoice.ID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to load lead order items").
			Mark(ierr.ErrDatabase)
	}

	byLead := make(map[string][]billing.InvoiceLeadOrderItem)
	for _, item := range items {
		byLead[item.LeadID] = append(byLead[item.LeadID], item)
	}
	for i := range invoice.Leads {
		invoice.Leads[i].OrderItems = byLead[invoice.Leads[i].ID]
	}
	return nil
}

func (r *billingRepository) GetBuyer(ctx context.Context, id string) (*billing.Buyer, error) {
	var buyer billing.Buyer
	err := r.db.GetContext(ctx, &buyer,
		`SELECT id, name, power_buyer FROM buyers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("buyer not found").
				WithHintf("buyer %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to load buyer").
			Mark(ierr.ErrDatabase)
	}
	return &buyer, nil
}

func (r *billingRepository) GetInvoicePeriod(ctx context.Context, invoiceID string) (*billing.InvoicePeriod, error) {
	var period billing.InvoicePeriod
	err := r.db.GetContext(ctx, &period,
		`SELECT invoice_id, start_date, end_date FROM invoice_periods WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("invoice period not found").
				WithHintf("invoice %s has no billing period", invoiceID).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to load invoice period").
			Mark(ierr.ErrDatabase)
	}
	return &period, nil
}
