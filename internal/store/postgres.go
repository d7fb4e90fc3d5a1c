// Package store provides the local store adapter: a PostgreSQL-backed
// implementation of core.LocalStore plus an in-memory implementation used
// by tests and by the offline demo mode.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"billbook/internal/core"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements core.LocalStore over a pgx pool. Every call is atomic
// for its own row; no call spans multiple tables.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// ── Companies ─────────────────────────────────────────────────────────────────

func (s *Postgres) UpsertCompany(ctx context.Context, c core.Company) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO companies (doc_id, name, phone, address, description, outstanding, is_synced, cr_number, vat_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (doc_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			description = EXCLUDED.description,
			outstanding = EXCLUDED.outstanding,
			is_synced = EXCLUDED.is_synced,
			cr_number = EXCLUDED.cr_number,
			vat_number = EXCLUDED.vat_number`,
		c.DocID, c.Name, c.Phone, c.Address, c.Description,
		c.Outstanding.StringFixed(core.MoneyPlaces), c.IsSynced, c.CRNumber, c.VATNumber,
	)
	if err != nil {
		return fmt.Errorf("upsert company %s: %w", c.DocID, err)
	}
	return nil
}

func (s *Postgres) Companies(ctx context.Context) ([]core.Company, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT doc_id, name, phone, address, description, outstanding, is_synced, cr_number, vat_number
		FROM companies
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []core.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func (s *Postgres) CompanyByID(ctx context.Context, docID string) (*core.Company, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT doc_id, name, phone, address, description, outstanding, is_synced, cr_number, vat_number
		FROM companies
		WHERE doc_id = $1`, docID)
	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("company %s: %w", docID, core.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *Postgres) DeleteCompany(ctx context.Context, docID string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM companies WHERE doc_id = $1", docID); err != nil {
		return fmt.Errorf("delete company %s: %w", docID, err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*core.Company, error) {
	var c core.Company
	if err := row.Scan(
		&c.DocID, &c.Name, &c.Phone, &c.Address, &c.Description,
		&c.Outstanding, &c.IsSynced, &c.CRNumber, &c.VATNumber,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &c, nil
}

// ── Prices ────────────────────────────────────────────────────────────────────

func (s *Postgres) UpsertPrice(ctx context.Context, p core.PriceItem) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO prices (doc_id, item_name, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (doc_id) DO UPDATE SET
			item_name = EXCLUDED.item_name,
			price = EXCLUDED.price`,
		p.DocID, p.ItemName, p.Price.StringFixed(core.MoneyPlaces),
	)
	if err != nil {
		return fmt.Errorf("upsert price %s: %w", p.DocID, err)
	}
	return nil
}

func (s *Postgres) Prices(ctx context.Context) ([]core.PriceItem, error) {
	rows, err := s.pool.Query(ctx, "SELECT doc_id, item_name, price FROM prices ORDER BY item_name")
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	var items []core.PriceItem
	for rows.Next() {
		var p core.PriceItem
		if err := rows.Scan(&p.DocID, &p.ItemName, &p.Price); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (s *Postgres) DeletePrice(ctx context.Context, docID string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM prices WHERE doc_id = $1", docID); err != nil {
		return fmt.Errorf("delete price %s: %w", docID, err)
	}
	return nil
}

func (s *Postgres) ClearPrices(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM prices"); err != nil {
		return fmt.Errorf("clear prices: %w", err)
	}
	return nil
}

// ── Bills ─────────────────────────────────────────────────────────────────────

func (s *Postgres) UpsertInvoice(ctx context.Context, inv core.Invoice) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO bills (doc_id, company_doc_id, total, bill_date, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (doc_id) DO UPDATE SET
			company_doc_id = EXCLUDED.company_doc_id,
			total = EXCLUDED.total,
			bill_date = EXCLUDED.bill_date,
			payload = EXCLUDED.payload`,
		inv.DocID, inv.CompanyDocID, inv.Total.StringFixed(core.MoneyPlaces),
		inv.Date, inv.Payload.Encode(),
	)
	if err != nil {
		return fmt.Errorf("upsert invoice %s: %w", inv.DocID, err)
	}
	return nil
}

func (s *Postgres) Invoices(ctx context.Context) ([]core.Invoice, error) {
	return s.queryInvoices(ctx, `
		SELECT doc_id, company_doc_id, total, bill_date, payload
		FROM bills
		ORDER BY bill_date, doc_id`)
}

func (s *Postgres) InvoicesByCompany(ctx context.Context, companyDocID string) ([]core.Invoice, error) {
	return s.queryInvoices(ctx, `
		SELECT doc_id, company_doc_id, total, bill_date, payload
		FROM bills
		WHERE company_doc_id = $1
		ORDER BY bill_date, doc_id`, companyDocID)
}

func (s *Postgres) queryInvoices(ctx context.Context, query string, args ...any) ([]core.Invoice, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []core.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (s *Postgres) InvoiceByID(ctx context.Context, docID string) (*core.Invoice, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT doc_id, company_doc_id, total, bill_date, payload
		FROM bills
		WHERE doc_id = $1`, docID)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", docID, core.ErrNotFound)
		}
		return nil, err
	}
	return inv, nil
}

func (s *Postgres) DeleteInvoice(ctx context.Context, docID string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM bills WHERE doc_id = $1", docID); err != nil {
		return fmt.Errorf("delete invoice %s: %w", docID, err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*core.Invoice, error) {
	var (
		inv  core.Invoice
		raw  []byte
		date time.Time
	)
	if err := row.Scan(&inv.DocID, &inv.CompanyDocID, &inv.Total, &date, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	inv.Date = date
	inv.Payload = core.DecodeInvoicePayload(raw)
	return &inv, nil
}

// ── Receipts ──────────────────────────────────────────────────────────────────

func (s *Postgres) UpsertReceipt(ctx context.Context, rec core.Receipt) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO receipts (doc_id, company_doc_id, amount, receipt_date, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (doc_id) DO UPDATE SET
			company_doc_id = EXCLUDED.company_doc_id,
			amount = EXCLUDED.amount,
			receipt_date = EXCLUDED.receipt_date,
			payload = EXCLUDED.payload`,
		rec.DocID, rec.CompanyDocID, rec.Amount.StringFixed(core.MoneyPlaces),
		rec.Date, rec.Payload.Encode(),
	)
	if err != nil {
		return fmt.Errorf("upsert receipt %s: %w", rec.DocID, err)
	}
	return nil
}

func (s *Postgres) Receipts(ctx context.Context) ([]core.Receipt, error) {
	return s.queryReceipts(ctx, `
		SELECT doc_id, company_doc_id, amount, receipt_date, payload
		FROM receipts
		ORDER BY receipt_date, doc_id`)
}

func (s *Postgres) ReceiptsByCompany(ctx context.Context, companyDocID string) ([]core.Receipt, error) {
	return s.queryReceipts(ctx, `
		SELECT doc_id, company_doc_id, amount, receipt_date, payload
		FROM receipts
		WHERE company_doc_id = $1
		ORDER BY receipt_date, doc_id`, companyDocID)
}

func (s *Postgres) queryReceipts(ctx context.Context, query string, args ...any) ([]core.Receipt, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []core.Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, *rec)
	}
	return receipts, rows.Err()
}

func (s *Postgres) ReceiptByID(ctx context.Context, docID string) (*core.Receipt, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT doc_id, company_doc_id, amount, receipt_date, payload
		FROM receipts
		WHERE doc_id = $1`, docID)
	rec, err := scanReceipt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("receipt %s: %w", docID, core.ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (s *Postgres) DeleteReceipt(ctx context.Context, docID string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM receipts WHERE doc_id = $1", docID); err != nil {
		return fmt.Errorf("delete receipt %s: %w", docID, err)
	}
	return nil
}

func scanReceipt(row pgx.Row) (*core.Receipt, error) {
	var (
		rec  core.Receipt
		raw  []byte
		date time.Time
	)
	if err := row.Scan(&rec.DocID, &rec.CompanyDocID, &rec.Amount, &date, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	rec.Date = date
	rec.Payload = core.DecodeReceiptPayload(raw)
	return &rec, nil
}

// ── Settings ──────────────────────────────────────────────────────────────────

func (s *Postgres) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx, "SELECT value FROM app_settings WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *Postgres) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO app_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// ── Notes ─────────────────────────────────────────────────────────────────────

func (s *Postgres) UpsertNote(ctx context.Context, n core.Note) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notes (note_date, note)
		VALUES ($1, $2)
		ON CONFLICT (note_date) DO UPDATE SET note = EXCLUDED.note`,
		n.Date, n.Note,
	)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

func (s *Postgres) Notes(ctx context.Context) ([]core.Note, error) {
	rows, err := s.pool.Query(ctx, "SELECT note_date, note FROM notes ORDER BY note_date")
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []core.Note
	for rows.Next() {
		var n core.Note
		if err := rows.Scan(&n.Date, &n.Note); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

var _ core.LocalStore = (*Postgres)(nil)
