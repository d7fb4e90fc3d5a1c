package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// LocalStore is the authoritative persistent store. Every row is addressed
// by an opaque document id; upsert is an unconditional overwrite-by-key and
// each call is atomic only for its own row.
type LocalStore interface {
	UpsertCompany(ctx context.Context, c Company) error
	Companies(ctx context.Context) ([]Company, error)
	CompanyByID(ctx context.Context, docID string) (*Company, error)
	DeleteCompany(ctx context.Context, docID string) error

	UpsertPrice(ctx context.Context, p PriceItem) error
	Prices(ctx context.Context) ([]PriceItem, error)
	DeletePrice(ctx context.Context, docID string) error
	// ClearPrices removes every row from the price table. Used by the
	// full-mirror price pull.
	ClearPrices(ctx context.Context) error

	UpsertInvoice(ctx context.Context, inv Invoice) error
	Invoices(ctx context.Context) ([]Invoice, error)
	InvoicesByCompany(ctx context.Context, companyDocID string) ([]Invoice, error)
	InvoiceByID(ctx context.Context, docID string) (*Invoice, error)
	DeleteInvoice(ctx context.Context, docID string) error

	UpsertReceipt(ctx context.Context, rec Receipt) error
	Receipts(ctx context.Context) ([]Receipt, error)
	ReceiptsByCompany(ctx context.Context, companyDocID string) ([]Receipt, error)
	ReceiptByID(ctx context.Context, docID string) (*Receipt, error)
	DeleteReceipt(ctx context.Context, docID string) error

	// GetSetting returns the stored value for key, or "" when the key has
	// never been written.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	UpsertNote(ctx context.Context, n Note) error
	Notes(ctx context.Context) ([]Note, error)
}

// RemoteStore is the eventually-consistent remote mirror. It holds only
// companies and prices; invoices and receipts are never synced. Every call
// may fail (network) — the caller decides whether failure aborts the
// operation or leaves local state dirty.
type RemoteStore interface {
	Companies(ctx context.Context) ([]Company, error)
	// SetCompany writes the given fields to companies/{docID}. With merge
	// set, absent fields keep their remote values.
	SetCompany(ctx context.Context, docID string, fields map[string]any, merge bool) error
	DeleteCompany(ctx context.Context, docID string) error

	Prices(ctx context.Context) ([]PriceItem, error)
	SetPrice(ctx context.Context, docID, itemName string, price decimal.Decimal) error
	DeletePrice(ctx context.Context, docID string) error
}

// Connectivity reports whether the remote store is reachable. Polled before
// each remote-touching operation; never cached across operations.
type Connectivity interface {
	Online(ctx context.Context) bool
}
