package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// KitDisposition distinguishes a first shipment from a replacement shipment.
type KitDisposition string

const (
	KitDispositionSent   KitDisposition = "sent"
	KitDispositionResent KitDisposition = "resent"
)

// Invoice is the root billing entity for one buyer and period. The export
// path only ever reads it; ownership stays with the billing data layer.
type Invoice struct {
	ID              string                   `db:"id" json:"id"`
	InvoiceNumber   string                   `db:"invoice_number" json:"invoice_number"`
	BuyerID         string                   `db:"buyer_id" json:"buyer_id"`
	Leads           []InvoiceLead            `json:"leads,omitempty"`
	ShippingKits    []ShippingKit            `json:"shipping_kits,omitempty"`
	CheckRequests   []InvoiceCheckRequest    `json:"check_requests,omitempty"`
	PostPayPayments []PostPayCustomerPayment `json:"post_pay_payments,omitempty"`
}

// InvoiceLead is a customer billing record generating recurring fees.
type InvoiceLead struct {
	ID                string                 `db:"id" json:"id"`
	CustomerEmail     string                 `db:"customer_email" json:"customer_email"`
	PriorCommission   decimal.Decimal        `db:"prior_commission" json:"prior_commission"`
	CurrentCommission decimal.Decimal        `db:"current_commission" json:"current_commission"`
	PriorFees         decimal.Decimal        `db:"prior_fees" json:"prior_fees"`
	CurrentFees       decimal.Decimal        `db:"current_fees" json:"current_fees"`
	BillingInterval   string                 `db:"billing_interval" json:"billing_interval"`
	OrderItems        []InvoiceLeadOrderItem `json:"order_items,omitempty"`
}

// InvoiceLeadOrderItem is a per-device order line under a lead.
type InvoiceLeadOrderItem struct {
	UUID             string          `db:"uuid" json:"uuid"`
	LeadID           string          `db:"lead_id" json:"lead_id"`
	CustomerEmail    string          `db:"customer_email" json:"customer_email"`
	CustomerName     string          `db:"customer_name" json:"customer_name"`
	InvoicePeriod    string          `db:"invoice_period" json:"invoice_period"`
	OrderDate        time.Time       `db:"order_date" json:"order_date"`
	ProductName      string          `db:"product_name" json:"product_name"`
	ProductCategory  string          `db:"product_category" json:"product_category"`
	ProductCondition string          `db:"product_condition" json:"product_condition"`
	DeviceFee        decimal.Decimal `db:"device_fee" json:"device_fee"`
	PartnerProductID string          `db:"partner_product_id" json:"partner_product_id"`
	PartnerName      string          `db:"partner_name" json:"partner_name"`
}

// ShippingKit is a physical return-kit shipment.
type ShippingKit struct {
	OrderNumber     string         `db:"order_number" json:"order_number"`
	CustomerEmail   string         `db:"customer_email" json:"customer_email"`
	CustomerName    string         `db:"customer_name" json:"customer_name"`
	ShipDate        time.Time      `db:"ship_date" json:"ship_date"`
	OrderDate       time.Time      `db:"order_date" json:"order_date"`
	ProductName     string         `db:"product_name" json:"product_name"`
	ProductCategory string         `db:"product_category" json:"product_category"`
	Disposition     KitDisposition `db:"disposition" json:"disposition"`
}

// InvoiceCheckRequest is a request to issue a paper check to a customer.
type InvoiceCheckRequest struct {
	OrderUID    string          `db:"order_uid" json:"order_uid"`
	CheckNumber string          `db:"check_number" json:"check_number"`
	CheckDate   time.Time       `db:"check_date" json:"check_date"`
	FirstName   string          `db:"first_name" json:"first_name"`
	LastName    string          `db:"last_name" json:"last_name"`
	CheckAmount decimal.Decimal `db:"check_amount" json:"check_amount"`
}

// PostPayCustomerPayment is an order billed after service completion,
// carrying a commission.
type PostPayCustomerPayment struct {
	OrderNumber          string          `db:"order_number" json:"order_number"`
	Email                string          `db:"email" json:"email"`
	FirstName            string          `db:"first_name" json:"first_name"`
	LastName             string          `db:"last_name" json:"last_name"`
	OrderDate            time.Time       `db:"order_date" json:"order_date"`
	PaymentDate          time.Time       `db:"payment_date" json:"payment_date"`
	ProductName          string          `db:"product_name" json:"product_name"`
	ProductCategoryName  string          `db:"product_category_name" json:"product_category_name"`
	ProductConditionName string          `db:"product_condition_name" json:"product_condition_name"`
	CommissionPercentage decimal.Decimal `db:"commission_percentage" json:"commission_percentage"`
	FinalBid             decimal.Decimal `db:"final_bid" json:"final_bid"`
	FinalOffer           decimal.Decimal `db:"final_offer" json:"final_offer"`
	OrderCommission      decimal.Decimal `db:"order_commission" json:"order_commission"`
}

// Buyer is the partner the invoice is issued to. PowerBuyer buyers see the
// reduced device-detail layout regardless of how the export was requested.
type Buyer struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	PowerBuyer bool   `db:"power_buyer" json:"power_buyer"`
}

// InvoicePeriod is the billing date range covered by one invoice. Either
// bound may be absent; absent bounds render as empty strings.
type InvoicePeriod struct {
	InvoiceID string     `db:"invoice_id" json:"invoice_id"`
	StartDate *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`
}

// SentKits returns the kits flagged as first shipments, preserving order.
func (i *Invoice) SentKits() []ShippingKit {
	return i.kitsWithDisposition(KitDispositionSent)
}

// ResentKits returns the kits flagged as replacement shipments.
func (i *Invoice) ResentKits() []ShippingKit {
	return i.kitsWithDisposition(KitDispositionResent)
}

func (i *Invoice) kitsWithDisposition(d KitDisposition) []ShippingKit {
	var kits []ShippingKit
	for _, kit := range i.ShippingKits {
		if kit.Disposition == d {
			kits = append(kits, kit)
		}
	}
	return kits
}

// OrderItems flattens the order items of every lead, preserving lead order.
func (i *Invoice) OrderItems() []InvoiceLeadOrderItem {
	var items []InvoiceLeadOrderItem
	for _, lead := range i.Leads {
		items = append(items, lead.OrderItems...)
	}
	return items
}
