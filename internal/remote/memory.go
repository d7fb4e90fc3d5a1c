package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"billbook/internal/core"

	"github.com/shopspring/decimal"
)

// Memory is an in-memory remote store with a switchable online flag and an
// optional forced write failure, used to exercise offline and push-failure
// paths in tests.
type Memory struct {
	mu         sync.Mutex
	online     bool
	failWrites bool
	companies  map[string]core.Company
	prices     map[string]core.PriceItem
}

var errWriteFailed = errors.New("simulated remote write failure")

func NewMemory() *Memory {
	return &Memory{
		online:    true,
		companies: make(map[string]core.Company),
		prices:    make(map[string]core.PriceItem),
	}
}

// SetOnline flips the connectivity oracle.
func (m *Memory) SetOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.online = online
}

// FailWrites makes every subsequent write return an error while reads and
// the connectivity probe keep working.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

func (m *Memory) Online(_ context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Memory) Companies(_ context.Context) ([]core.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, c)
	}
	return out, nil
}

func (m *Memory) SetCompany(_ context.Context, docID string, fields map[string]any, merge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWriteFailed
	}

	c := core.Company{DocID: docID}
	if existing, ok := m.companies[docID]; ok && merge {
		c = existing
	}
	for key, value := range fields {
		switch key {
		case "name":
			c.Name, _ = value.(string)
		case "phone":
			c.Phone, _ = value.(string)
		case "address":
			c.Address, _ = value.(string)
		case "description":
			c.Description, _ = value.(string)
		case "crNumber":
			c.CRNumber, _ = value.(string)
		case "vatNumber":
			c.VATNumber, _ = value.(string)
		case "outstanding":
			s, _ := value.(string)
			d, err := decimal.NewFromString(s)
			if err != nil {
				return fmt.Errorf("bad outstanding value %q: %w", s, err)
			}
			c.Outstanding = d
		}
	}
	m.companies[docID] = c
	return nil
}

func (m *Memory) DeleteCompany(_ context.Context, docID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWriteFailed
	}
	delete(m.companies, docID)
	return nil
}

// Company returns the stored remote document, for test assertions.
func (m *Memory) Company(docID string) (core.Company, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[docID]
	return c, ok
}

func (m *Memory) Prices(_ context.Context) ([]core.PriceItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.PriceItem, 0, len(m.prices))
	for _, p := range m.prices {
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) SetPrice(_ context.Context, docID, itemName string, price decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWriteFailed
	}
	m.prices[docID] = core.PriceItem{DocID: docID, ItemName: itemName, Price: price}
	return nil
}

func (m *Memory) DeletePrice(_ context.Context, docID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWriteFailed
	}
	delete(m.prices, docID)
	return nil
}

var (
	_ core.RemoteStore  = (*Memory)(nil)
	_ core.Connectivity = (*Memory)(nil)
)
