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

// ReceiptInput carries the user-editable fields of a receipt. There is no
// partial-amount edit operation: a wrong receipt is deleted and re-entered.
type ReceiptInput struct {
	CompanyDocID string          `json:"companyDocId"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
}

// ReceiptService records payments against a company's outstanding balance.
type ReceiptService struct {
	local  LocalStore
	ledger *CompanyService
	log    zerolog.Logger
}

func NewReceiptService(local LocalStore, ledger *CompanyService) *ReceiptService {
	return &ReceiptService{
		local:  local,
		ledger: ledger,
		log:    logger.WithComponent("receipt"),
	}
}

// Create validates the amount against the company's current outstanding
// balance, mints a receipt number, snapshots the post-receipt balance into
// the payload, stores the receipt, and reduces the outstanding balance.
// Validation failures reject before any store mutation.
func (s *ReceiptService) Create(ctx context.Context, in ReceiptInput) (*Receipt, error) {
	if in.CompanyDocID == "" {
		return nil, ErrMissingCompany
	}
	if !in.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	company, err := s.local.CompanyByID(ctx, in.CompanyDocID)
	if err != nil {
		return nil, err
	}
	if in.Amount.GreaterThan(company.Outstanding) {
		return nil, ErrAmountExceedsOutstanding
	}

	number, err := nextDocumentNumber(ctx, s.local, SettingReceiptCounter, receiptNumberPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payload := ReceiptPayload{
		ReceiptNumber:      number,
		CompanyName:        company.Name,
		Description:        in.Description,
		CreatedAt:          now,
		UpdatedAt:          now,
		OSAfterThisReceipt: company.Outstanding.Sub(in.Amount),
	}
	rec := Receipt{
		DocID:        uuid.NewString(),
		CompanyDocID: in.CompanyDocID,
		Amount:       in.Amount,
		Date:         in.Date,
		Payload:      payload,
	}
	if err := s.local.UpsertReceipt(ctx, rec); err != nil {
		return nil, fmt.Errorf("save receipt %s: %w", number, err)
	}

	if _, err := s.ledger.ApplyCreditDelta(ctx, in.CompanyDocID, in.Amount.Neg()); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the receipt and restores its full amount to the company's
// outstanding balance, unconditionally — even when the balance then exceeds
// any sane bound.
func (s *ReceiptService) Delete(ctx context.Context, docID string) error {
	old, err := s.local.ReceiptByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := s.local.DeleteReceipt(ctx, docID); err != nil {
		return fmt.Errorf("delete receipt %s: %w", docID, err)
	}
	if _, err := s.ledger.ApplyCreditDelta(ctx, old.CompanyDocID, old.Amount); err != nil {
		return err
	}
	return nil
}

// Get returns a single receipt by document id.
func (s *ReceiptService) Get(ctx context.Context, docID string) (*Receipt, error) {
	return s.local.ReceiptByID(ctx, docID)
}

// ListByCompany returns all receipts for one company.
func (s *ReceiptService) ListByCompany(ctx context.Context, companyDocID string) ([]Receipt, error) {
	return s.local.ReceiptsByCompany(ctx, companyDocID)
}
