package core

import (
	"context"
	"fmt"

	"billbook/internal/logger"

	"github.com/rs/zerolog"
)

// SyncService converges the local store and the remote mirror. Pulls are
// remote-wins: a company pull overwrites local rows regardless of their
// dirty state, and a price pull replaces the entire local table. Pushes
// sweep every unsynced company. All operations fail fast when offline and
// all recovery is user-initiated — there is no queue and no automatic
// retry.
type SyncService struct {
	local  LocalStore
	remote RemoteStore
	conn   Connectivity
	log    zerolog.Logger
}

func NewSyncService(local LocalStore, remote RemoteStore, conn Connectivity) *SyncService {
	return &SyncService{
		local:  local,
		remote: remote,
		conn:   conn,
		log:    logger.WithComponent("sync"),
	}
}

// PullCompanies overwrites the local row for every remote company document
// and marks it synced. Local-only companies (created offline, never pushed)
// are left in place; local unsynced edits to pulled rows are silently
// discarded — last writer wins from the remote side.
func (s *SyncService) PullCompanies(ctx context.Context) (int, error) {
	if !s.conn.Online(ctx) {
		return 0, ErrOffline
	}
	docs, err := s.remote.Companies(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch remote companies: %w", err)
	}
	for _, c := range docs {
		c.IsSynced = true
		if err := s.local.UpsertCompany(ctx, c); err != nil {
			return 0, fmt.Errorf("store pulled company %s: %w", c.DocID, err)
		}
	}
	s.log.Info().Int("count", len(docs)).Msg("companies pulled from remote")
	return len(docs), nil
}

// PullPrices mirrors the remote price collection wholesale: the local table
// is cleared first, then every remote document is inserted. An empty remote
// collection therefore empties the local table, and offline local edits are
// destroyed by the pull.
func (s *SyncService) PullPrices(ctx context.Context) (int, error) {
	if !s.conn.Online(ctx) {
		return 0, ErrOffline
	}
	items, err := s.remote.Prices(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch remote prices: %w", err)
	}
	if err := s.local.ClearPrices(ctx); err != nil {
		return 0, fmt.Errorf("clear local prices: %w", err)
	}
	for _, p := range items {
		if err := s.local.UpsertPrice(ctx, p); err != nil {
			return 0, fmt.Errorf("store pulled price %s: %w", p.DocID, err)
		}
	}
	s.log.Info().Int("count", len(items)).Msg("prices mirrored from remote")
	return len(items), nil
}

// SyncCompanies pushes every local company with isSynced=false to the
// remote store — identity fields and outstanding together — then marks it
// synced. A failure mid-sweep returns the number already pushed and leaves
// the remaining companies dirty; the sweep is resumable because already-
// synced rows are simply skipped next time.
func (s *SyncService) SyncCompanies(ctx context.Context) (int, error) {
	if !s.conn.Online(ctx) {
		return 0, ErrOffline
	}
	companies, err := s.local.Companies(ctx)
	if err != nil {
		return 0, fmt.Errorf("list local companies: %w", err)
	}

	synced := 0
	for _, c := range companies {
		if c.IsSynced {
			continue
		}
		fields := map[string]any{
			"name":        c.Name,
			"phone":       c.Phone,
			"address":     c.Address,
			"description": c.Description,
			"outstanding": c.Outstanding.StringFixed(MoneyPlaces),
			"crNumber":    c.CRNumber,
			"vatNumber":   c.VATNumber,
		}
		if err := s.remote.SetCompany(ctx, c.DocID, fields, false); err != nil {
			return synced, fmt.Errorf("push company %s: %w", c.DocID, err)
		}
		c.IsSynced = true
		if err := s.local.UpsertCompany(ctx, c); err != nil {
			return synced, fmt.Errorf("mark company %s synced: %w", c.DocID, err)
		}
		synced++
	}
	s.log.Info().Int("count", synced).Msg("unsynced companies pushed to remote")
	return synced, nil
}
