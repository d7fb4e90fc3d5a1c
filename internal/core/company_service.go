package core

import (
	"context"
	"fmt"

	"billbook/internal/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CompanyInput carries the user-editable identity fields of a company.
type CompanyInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	CRNumber    string `json:"crNumber"`
	VATNumber   string `json:"vatNumber"`
}

// CompanyService owns the outstanding-balance invariant. Every invoice and
// receipt mutation routes its balance effect through ApplyCreditDelta; no
// other code path changes a company's outstanding.
//
// Identity edits and balance changes push to the remote store on separate
// paths: identity pushes never carry the outstanding field, and balance
// pushes carry only it.
type CompanyService struct {
	local  LocalStore
	remote RemoteStore
	conn   Connectivity
	log    zerolog.Logger
}

func NewCompanyService(local LocalStore, remote RemoteStore, conn Connectivity) *CompanyService {
	return &CompanyService{
		local:  local,
		remote: remote,
		conn:   conn,
		log:    logger.WithComponent("company"),
	}
}

// Create stores a new company locally and pushes its identity fields to the
// remote mirror when online. A failed push leaves the row unsynced.
func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*Company, error) {
	if in.Name == "" {
		return nil, ErrMissingName
	}
	c := Company{
		DocID:       uuid.NewString(),
		Name:        in.Name,
		Phone:       in.Phone,
		Address:     in.Address,
		Description: in.Description,
		CRNumber:    in.CRNumber,
		VATNumber:   in.VATNumber,
		Outstanding: decimal.Zero,
		IsSynced:    false,
	}
	if err := s.local.UpsertCompany(ctx, c); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	s.pushIdentity(ctx, &c)
	return &c, nil
}

// Update replaces the identity fields of an existing company. Outstanding
// is untouched and deliberately excluded from the remote push.
func (s *CompanyService) Update(ctx context.Context, docID string, in CompanyInput) (*Company, error) {
	if in.Name == "" {
		return nil, ErrMissingName
	}
	c, err := s.local.CompanyByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Phone = in.Phone
	c.Address = in.Address
	c.Description = in.Description
	c.CRNumber = in.CRNumber
	c.VATNumber = in.VATNumber
	c.IsSynced = false
	if err := s.local.UpsertCompany(ctx, *c); err != nil {
		return nil, fmt.Errorf("update company %s: %w", docID, err)
	}
	s.pushIdentity(ctx, c)
	return c, nil
}

// Delete removes the company row and, when online, its remote document.
// Invoices and receipts referencing the company are NOT cascaded; they
// remain addressable under the now-dangling company id.
func (s *CompanyService) Delete(ctx context.Context, docID string) error {
	if err := s.local.DeleteCompany(ctx, docID); err != nil {
		return fmt.Errorf("delete company %s: %w", docID, err)
	}
	if s.conn.Online(ctx) {
		if err := s.remote.DeleteCompany(ctx, docID); err != nil {
			s.log.Warn().Err(err).Str("doc_id", docID).Msg("remote company delete failed")
		}
	}
	return nil
}

// Get returns a single company by document id.
func (s *CompanyService) Get(ctx context.Context, docID string) (*Company, error) {
	return s.local.CompanyByID(ctx, docID)
}

// List returns all companies.
func (s *CompanyService) List(ctx context.Context) ([]Company, error) {
	return s.local.Companies(ctx)
}

// ApplyCreditDelta is the only path by which a company's outstanding
// balance changes. It reads the current balance, applies the signed delta,
// writes the row locally with isSynced=false, and then best-effort pushes
// the new balance to the remote mirror. A failed push is swallowed — the
// row stays dirty until the next explicit sync pass.
func (s *CompanyService) ApplyCreditDelta(ctx context.Context, docID string, delta decimal.Decimal) (decimal.Decimal, error) {
	c, err := s.local.CompanyByID(ctx, docID)
	if err != nil {
		return decimal.Zero, err
	}
	c.Outstanding = c.Outstanding.Add(delta)
	c.IsSynced = false
	if err := s.local.UpsertCompany(ctx, *c); err != nil {
		return decimal.Zero, fmt.Errorf("apply credit delta for %s: %w", docID, err)
	}

	if s.conn.Online(ctx) {
		fields := map[string]any{"outstanding": c.Outstanding.StringFixed(MoneyPlaces)}
		if err := s.remote.SetCompany(ctx, docID, fields, true); err != nil {
			s.log.Warn().Err(err).Str("doc_id", docID).Msg("outstanding push failed, row left unsynced")
			return c.Outstanding, nil
		}
		c.IsSynced = true
		if err := s.local.UpsertCompany(ctx, *c); err != nil {
			s.log.Warn().Err(err).Str("doc_id", docID).Msg("failed to mark company synced")
		}
	}
	return c.Outstanding, nil
}

// pushIdentity best-effort mirrors the identity fields (never outstanding)
// to the remote store and flips the synced flag on success.
func (s *CompanyService) pushIdentity(ctx context.Context, c *Company) {
	if !s.conn.Online(ctx) {
		return
	}
	fields := map[string]any{
		"name":        c.Name,
		"phone":       c.Phone,
		"address":     c.Address,
		"description": c.Description,
		"crNumber":    c.CRNumber,
		"vatNumber":   c.VATNumber,
	}
	if err := s.remote.SetCompany(ctx, c.DocID, fields, true); err != nil {
		s.log.Warn().Err(err).Str("doc_id", c.DocID).Msg("identity push failed, row left unsynced")
		return
	}
	c.IsSynced = true
	if err := s.local.UpsertCompany(ctx, *c); err != nil {
		s.log.Warn().Err(err).Str("doc_id", c.DocID).Msg("failed to mark company synced")
	}
}
