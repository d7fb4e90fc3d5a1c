package core

import (
	"context"
	"fmt"

	"billbook/internal/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PriceService manages the shared price list. Unlike companies, prices have
// no offline-create-then-sync-later path: every single-item write requires
// the remote store and fails fast offline. The remote write happens first;
// only after it succeeds is the local mirror updated.
type PriceService struct {
	local  LocalStore
	remote RemoteStore
	conn   Connectivity
	log    zerolog.Logger
}

func NewPriceService(local LocalStore, remote RemoteStore, conn Connectivity) *PriceService {
	return &PriceService{
		local:  local,
		remote: remote,
		conn:   conn,
		log:    logger.WithComponent("price"),
	}
}

// List returns the local price table.
func (s *PriceService) List(ctx context.Context) ([]PriceItem, error) {
	return s.local.Prices(ctx)
}

// Save creates or updates a single price-list item. Requires online.
func (s *PriceService) Save(ctx context.Context, in PriceItem) (*PriceItem, error) {
	if in.ItemName == "" {
		return nil, ErrMissingItemName
	}
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !s.conn.Online(ctx) {
		return nil, ErrOffline
	}
	if in.DocID == "" {
		in.DocID = uuid.NewString()
	}
	if err := s.remote.SetPrice(ctx, in.DocID, in.ItemName, in.Price); err != nil {
		return nil, fmt.Errorf("push price %q: %w", in.ItemName, err)
	}
	if err := s.local.UpsertPrice(ctx, in); err != nil {
		return nil, fmt.Errorf("save price %q: %w", in.ItemName, err)
	}
	return &in, nil
}

// Delete removes a price-list item remotely and locally. Requires online.
func (s *PriceService) Delete(ctx context.Context, docID string) error {
	if !s.conn.Online(ctx) {
		return ErrOffline
	}
	if err := s.remote.DeletePrice(ctx, docID); err != nil {
		return fmt.Errorf("delete remote price %s: %w", docID, err)
	}
	if err := s.local.DeletePrice(ctx, docID); err != nil {
		return fmt.Errorf("delete price %s: %w", docID, err)
	}
	return nil
}
