package testutil

import (
	"context"
	"sync"

	"github.com/usell/billing/internal/domain/billing"
	ierr "github.com/usell/billing/internal/errors"
	"github.com/usell/billing/internal/types"
)

// InMemoryBillingStore implements billing.Repository for tests.
type InMemoryBillingStore struct {
	mu       sync.RWMutex
	invoices map[string]*billing.Invoice
	buyers   map[string]*billing.Buyer
	periods  map[string]*billing.InvoicePeriod
}

// NewInMemoryBillingStore creates a new in-memory billing store
func NewInMemoryBillingStore() *InMemoryBillingStore {
	return &InMemoryBillingStore{
		invoices: make(map[string]*billing.Invoice),
		buyers:   make(map[string]*billing.Buyer),
		periods:  make(map[string]*billing.InvoicePeriod),
	}
}

// AddInvoice seeds an invoice into the store, assigning an id when the
// fixture leaves it blank.
func (s *InMemoryBillingStore) AddInvoice(inv *billing.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv.ID == "" {
		inv.ID = types.GenerateUUIDWithPrefix("inv")
	}
	s.invoices[inv.ID] = inv
}

// AddBuyer seeds a buyer into the store.
func (s *InMemoryBillingStore) AddBuyer(b *billing.Buyer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = types.GenerateUUIDWithPrefix("byr")
	}
	s.buyers[b.ID] = b
}

// AddPeriod seeds an invoice period into the store.
func (s *InMemoryBillingStore) AddPeriod(p *billing.InvoicePeriod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods[p.InvoiceID] = p
}

// Clear removes everything from the store.
func (s *InMemoryBillingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make(map[string]*billing.Invoice)
	s.buyers = make(map[string]*billing.Buyer)
	s.periods = make(map[string]*billing.InvoicePeriod)
}

func (s *InMemoryBillingStore) GetInvoice(ctx context.Context, id string) (*billing.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if inv, ok := s.invoices[id]; ok {
		return inv, nil
	}
	return nil, ierr.NewError("invoice not found").
		WithHintf("invoice %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryBillingStore) GetBuyer(ctx context.Context, id string) (*billing.Buyer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.buyers[id]; ok {
		return b, nil
	}
	return nil, ierr.NewError("buyer not found").
		WithHintf("buyer %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryBillingStore) GetInvoicePeriod(ctx context.Context, invoiceID string) (*billing.InvoicePeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.periods[invoiceID]; ok {
		return p, nil
	}
	return nil, ierr.NewError("invoice period not found").
		WithHintf("invoice %s has no billing period", invoiceID).
		Mark(ierr.ErrNotFound)
}
