package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"billbook/internal/core"
	"billbook/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate brings the local schema up to the latest version. The current
// version is tracked in app_settings under the schemaVersion key; patches
// with a higher version are applied in order, each inside its own
// transaction. Patches only add tables and columns, so re-running a partial
// migration is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// app_settings carries the version marker itself, so it is created
	// outside the patch stream.
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("bootstrap app_settings: %w", err)
	}

	var raw string
	err := pool.QueryRow(ctx,
		"SELECT value FROM app_settings WHERE key = $1", core.SettingSchemaVersion,
	).Scan(&raw)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	current, _ := strconv.Atoi(raw)

	patches, err := migrations.Patches()
	if err != nil {
		return err
	}

	for _, p := range patches {
		if p.Version <= current {
			continue
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", p.Name, err)
		}
		if _, err := tx.Exec(ctx, p.SQL); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("apply migration %s: %w", p.Name, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO app_settings (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			core.SettingSchemaVersion, strconv.Itoa(p.Version),
		); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record schema version %d: %w", p.Version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %s: %w", p.Name, err)
		}
		current = p.Version
	}
	return nil
}
