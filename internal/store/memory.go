package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"billbook/internal/core"
)

// Memory is an in-memory core.LocalStore. It backs the unit tests and the
// demo mode of the CLI; semantics mirror the Postgres adapter, including
// overwrite-by-key upserts and "" for absent settings.
type Memory struct {
	mu        sync.Mutex
	companies map[string]core.Company
	prices    map[string]core.PriceItem
	invoices  map[string]core.Invoice
	receipts  map[string]core.Receipt
	settings  map[string]string
	notes     map[string]core.Note // keyed by date (2006-01-02)
}

func NewMemory() *Memory {
	return &Memory{
		companies: make(map[string]core.Company),
		prices:    make(map[string]core.PriceItem),
		invoices:  make(map[string]core.Invoice),
		receipts:  make(map[string]core.Receipt),
		settings:  make(map[string]string),
		notes:     make(map[string]core.Note),
	}
}

func (m *Memory) UpsertCompany(_ context.Context, c core.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[c.DocID] = c
	return nil
}

func (m *Memory) Companies(_ context.Context) ([]core.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) CompanyByID(_ context.Context, docID string) (*core.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[docID]
	if !ok {
		return nil, fmt.Errorf("company %s: %w", docID, core.ErrNotFound)
	}
	return &c, nil
}

func (m *Memory) DeleteCompany(_ context.Context, docID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.companies, docID)
	return nil
}

func (m *Memory) UpsertPrice(_ context.Context, p core.PriceItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[p.DocID] = p
	return nil
}

func (m *Memory) Prices(_ context.Context) ([]core.PriceItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.PriceItem, 0, len(m.prices))
	for _, p := range m.prices {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })
	return out, nil
}

func (m *Memory) DeletePrice(_ context.Context, docID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prices, docID)
	return nil
}

func (m *Memory) ClearPrices(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices = make(map[string]core.PriceItem)
	return nil
}

func (m *Memory) UpsertInvoice(_ context.Context, inv core.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[inv.DocID] = inv
	return nil
}

func (m *Memory) Invoices(_ context.Context) ([]core.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		out = append(out, inv)
	}
	sortInvoices(out)
	return out, nil
}

func (m *Memory) InvoicesByCompany(_ context.Context, companyDocID string) ([]core.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []core.Invoice
	for _, inv := range m.invoices {
		if inv.CompanyDocID == companyDocID {
			out = append(out, inv)
		}
	}
	sortInvoices(out)
	return out, nil
}

func (m *Memory) InvoiceByID(_ context.Context, docID string) (*core.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[docID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", docID, core.ErrNotFound)
	}
	return &inv, nil
}

func (m *Memory) DeleteInvoice(_ context.Context, docID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.invoices, docID)
	return nil
}

func (m *Memory) UpsertReceipt(_ context.Context, rec core.Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[rec.DocID] = rec
	return nil
}

func (m *Memory) Receipts(_ context.Context) ([]core.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Receipt, 0, len(m.receipts))
	for _, rec := range m.receipts {
		out = append(out, rec)
	}
	sortReceipts(out)
	return out, nil
}

func (m *Memory) ReceiptsByCompany(_ context.Context, companyDocID string) ([]core.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []core.Receipt
	for _, rec := range m.receipts {
		if rec.CompanyDocID == companyDocID {
			out = append(out, rec)
		}
	}
	sortReceipts(out)
	return out, nil
}

func (m *Memory) ReceiptByID(_ context.Context, docID string) (*core.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.receipts[docID]
	if !ok {
		return nil, fmt.Errorf("receipt %s: %w", docID, core.ErrNotFound)
	}
	return &rec, nil
}

func (m *Memory) DeleteReceipt(_ context.Context, docID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.receipts, docID)
	return nil
}

func (m *Memory) GetSetting(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings[key], nil
}

func (m *Memory) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

func (m *Memory) UpsertNote(_ context.Context, n core.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[n.Date.Format("2006-01-02")] = n
	return nil
}

func (m *Memory) Notes(_ context.Context) ([]core.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Note, 0, len(m.notes))
	for _, n := range m.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func sortInvoices(invoices []core.Invoice) {
	sort.Slice(invoices, func(i, j int) bool {
		if !invoices[i].Date.Equal(invoices[j].Date) {
			return invoices[i].Date.Before(invoices[j].Date)
		}
		return invoices[i].DocID < invoices[j].DocID
	})
}

func sortReceipts(receipts []core.Receipt) {
	sort.Slice(receipts, func(i, j int) bool {
		if !receipts[i].Date.Equal(receipts[j].Date) {
			return receipts[i].Date.Before(receipts[j].Date)
		}
		return receipts[i].DocID < receipts[j].DocID
	})
}

var _ core.LocalStore = (*Memory)(nil)
