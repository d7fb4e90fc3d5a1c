package app

import (
	"context"
	"errors"

	"billbook/internal/core"

	"github.com/shopspring/decimal"
)

// ErrInvalidDate is returned when a request date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")

// DateFormat is the wire format for transaction dates.
const DateFormat = "2006-01-02"

// InvoiceRequest is the wire shape for creating or updating a bill.
type InvoiceRequest struct {
	CompanyDocID string             `json:"companyDocId"`
	Date         string             `json:"date"`
	IsCredit     bool               `json:"isCredit"`
	Items        []core.InvoiceLine `json:"items"`
}

// ReceiptRequest is the wire shape for recording a payment.
type ReceiptRequest struct {
	CompanyDocID string          `json:"companyDocId"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
}

// NoteRequest is the wire shape for saving a daily note.
type NoteRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// SyncResult reports how many documents a sync operation moved.
type SyncResult struct {
	Count int `json:"count"`
}

// ApplicationService is the single interface all adapters (web, CLI) call.
// It decouples presentation from business logic; implementations contain no
// display logic of any kind.
type ApplicationService interface {
	// ListCompanies returns all companies ordered by name.
	ListCompanies(ctx context.Context) ([]core.Company, error)

	// GetCompany returns a single company by document id.
	GetCompany(ctx context.Context, docID string) (*core.Company, error)

	// CreateCompany stores a new company and pushes it remotely when online.
	CreateCompany(ctx context.Context, in core.CompanyInput) (*core.Company, error)

	// UpdateCompany replaces a company's identity fields.
	UpdateCompany(ctx context.Context, docID string, in core.CompanyInput) (*core.Company, error)

	// DeleteCompany removes a company; its bills and receipts are orphaned,
	// not cascaded.
	DeleteCompany(ctx context.Context, docID string) error

	// ListPrices returns the local price list.
	ListPrices(ctx context.Context) ([]core.PriceItem, error)

	// SavePrice creates or updates a price-list item. Requires online.
	SavePrice(ctx context.Context, in core.PriceItem) (*core.PriceItem, error)

	// DeletePrice removes a price-list item. Requires online.
	DeletePrice(ctx context.Context, docID string) error

	// ListInvoices returns all bills for one company.
	ListInvoices(ctx context.Context, companyDocID string) ([]core.Invoice, error)

	// CreateInvoice stores a new bill with a freshly minted number.
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*core.Invoice, error)

	// UpdateInvoice replaces a bill's items, date, and classification.
	UpdateInvoice(ctx context.Context, docID string, req InvoiceRequest) (*core.Invoice, error)

	// DeleteInvoice removes a bill, reversing its balance contribution.
	DeleteInvoice(ctx context.Context, docID string) error

	// ListReceipts returns all receipts for one company.
	ListReceipts(ctx context.Context, companyDocID string) ([]core.Receipt, error)

	// CreateReceipt records a payment against a company's balance.
	CreateReceipt(ctx context.Context, req ReceiptRequest) (*core.Receipt, error)

	// DeleteReceipt removes a receipt, restoring its amount to the balance.
	DeleteReceipt(ctx context.Context, docID string) error

	// PullCompanies overwrites local companies from the remote mirror.
	PullCompanies(ctx context.Context) (*SyncResult, error)

	// PullPrices replaces the local price table with the remote collection.
	PullPrices(ctx context.Context) (*SyncResult, error)

	// SyncCompanies pushes every unsynced local company to the remote store.
	SyncCompanies(ctx context.Context) (*SyncResult, error)

	// GetStatement builds the ledger report for a company and date range
	// (both bounds YYYY-MM-DD, inclusive).
	GetStatement(ctx context.Context, companyDocID, from, to string) (*core.Statement, error)

	// SaveNote upserts the note for one calendar day.
	SaveNote(ctx context.Context, req NoteRequest) (*core.Note, error)

	// ListNotes returns all notes ordered by date.
	ListNotes(ctx context.Context) ([]core.Note, error)
}
