package core

import (
	"context"
	"fmt"
	"time"

	"billbook/internal/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// InvoiceInput carries the user-editable fields of an invoice.
type InvoiceInput struct {
	CompanyDocID string        `json:"companyDocId"`
	Date         time.Time     `json:"date"`
	IsCredit     bool          `json:"isCredit"`
	Items        []InvoiceLine `json:"items"`
}

// InvoiceService creates, updates, and deletes bills. Balance effects of
// credit invoices are routed through the company ledger engine.
type InvoiceService struct {
	local  LocalStore
	ledger *CompanyService
	log    zerolog.Logger
}

func NewInvoiceService(local LocalStore, ledger *CompanyService) *InvoiceService {
	return &InvoiceService{
		local:  local,
		ledger: ledger,
		log:    logger.WithComponent("invoice"),
	}
}

func validateInvoiceInput(in InvoiceInput) error {
	if in.CompanyDocID == "" {
		return ErrMissingCompany
	}
	if len(in.Items) == 0 {
		return ErrNoLineItems
	}
	return nil
}

// Create mints a fresh invoice number, snapshots the company identity
// fields into the payload, stores the bill, and — for credit sales —
// increases the company's outstanding balance by the invoice total.
func (s *InvoiceService) Create(ctx context.Context, in InvoiceInput) (*Invoice, error) {
	if err := validateInvoiceInput(in); err != nil {
		return nil, err
	}
	company, err := s.local.CompanyByID(ctx, in.CompanyDocID)
	if err != nil {
		return nil, err
	}

	number, err := nextDocumentNumber(ctx, s.local, SettingInvoiceCounter, invoiceNumberPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payload := InvoicePayload{
		InvoiceNumber:  number,
		IsCredit:       in.IsCredit,
		CompanyName:    company.Name,
		CompanyAddress: company.Address,
		CompanyCR:      company.CRNumber,
		CompanyVAT:     company.VATNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
		Items:          in.Items,
	}
	inv := Invoice{
		DocID:        uuid.NewString(),
		CompanyDocID: in.CompanyDocID,
		Total:        payload.Total(),
		Date:         in.Date,
		Payload:      payload,
	}
	if err := s.local.UpsertInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("save invoice %s: %w", number, err)
	}

	if in.IsCredit {
		if _, err := s.ledger.ApplyCreditDelta(ctx, in.CompanyDocID, inv.Total); err != nil {
			return nil, err
		}
	}
	return &inv, nil
}

// Update replaces the line items, date, and cash/credit classification of
// an existing invoice. The company snapshot fields and invoice number are
// preserved — the bill is a historical record. The balance effect of the
// edit is applied as a single signed delta
//
//	(newIsCredit ? newTotal : 0) − (oldIsCredit ? oldTotal : 0)
//
// so there is no window in which the outstanding balance holds a partially
// applied edit.
func (s *InvoiceService) Update(ctx context.Context, docID string, in InvoiceInput) (*Invoice, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoLineItems
	}
	old, err := s.local.InvoiceByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	payload := old.Payload
	payload.IsCredit = in.IsCredit
	payload.Items = in.Items
	payload.UpdatedAt = time.Now().UTC()

	inv := Invoice{
		DocID:        old.DocID,
		CompanyDocID: old.CompanyDocID,
		Total:        payload.Total(),
		Date:         in.Date,
		Payload:      payload,
	}
	if err := s.local.UpsertInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("update invoice %s: %w", docID, err)
	}

	delta := decimal.Zero
	if in.IsCredit {
		delta = inv.Total
	}
	if old.Payload.IsCredit {
		delta = delta.Sub(old.Total)
	}
	if !delta.IsZero() {
		if _, err := s.ledger.ApplyCreditDelta(ctx, old.CompanyDocID, delta); err != nil {
			return nil, err
		}
	}
	return &inv, nil
}

// Delete removes the bill and, for credit sales, reverses its contribution
// to the company's outstanding balance. The reversal is unconditional: it
// does not re-validate against receipts already taken, so the balance may
// go negative.
func (s *InvoiceService) Delete(ctx context.Context, docID string) error {
	old, err := s.local.InvoiceByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := s.local.DeleteInvoice(ctx, docID); err != nil {
		return fmt.Errorf("delete invoice %s: %w", docID, err)
	}
	if old.Payload.IsCredit {
		if _, err := s.ledger.ApplyCreditDelta(ctx, old.CompanyDocID, old.Total.Neg()); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a single invoice by document id.
func (s *InvoiceService) Get(ctx context.Context, docID string) (*Invoice, error) {
	return s.local.InvoiceByID(ctx, docID)
}

// ListByCompany returns all bills for one company, including orphans whose
// company row has since been deleted.
func (s *InvoiceService) ListByCompany(ctx context.Context, companyDocID string) ([]Invoice, error) {
	return s.local.InvoicesByCompany(ctx, companyDocID)
}
