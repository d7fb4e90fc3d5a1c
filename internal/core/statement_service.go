package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger row labels.
const (
	particularsCreditSale = "Credit sale"
	particularsCashSale   = "Cash sale"
	particularsPayment    = "Payment received"
)

// StatementService builds the statement-of-account report for one company
// and date range. The report is recomputed from scratch on every request —
// it is never cached or persisted — so it always reflects the current local
// store, even when the live outstanding field has drifted.
type StatementService struct {
	local LocalStore
}

func NewStatementService(local LocalStore) *StatementService {
	return &StatementService{local: local}
}

// Build replays the company's full transaction history:
//
//  1. Opening balance sums every credit invoice minus every receipt dated
//     strictly before from.
//  2. Transactions dated within [from, to] (to inclusive, compared against
//     to+1 day exclusive) become rows: credit invoice → debit, cash invoice
//     → zero/zero (recorded but balance-neutral), receipt → credit.
//  3. Rows are sorted by date ascending and walked with a running balance.
//
// A dangling company id (deleted company with orphaned transactions) is not
// an error; the report simply carries an empty company name.
func (s *StatementService) Build(ctx context.Context, companyDocID string, from, to time.Time) (*Statement, error) {
	companyName := ""
	company, err := s.local.CompanyByID(ctx, companyDocID)
	switch {
	case err == nil:
		companyName = company.Name
	case errors.Is(err, ErrNotFound):
		// orphaned transactions stay reportable
	default:
		return nil, err
	}

	invoices, err := s.local.InvoicesByCompany(ctx, companyDocID)
	if err != nil {
		return nil, fmt.Errorf("load invoices for %s: %w", companyDocID, err)
	}
	receipts, err := s.local.ReceiptsByCompany(ctx, companyDocID)
	if err != nil {
		return nil, fmt.Errorf("load receipts for %s: %w", companyDocID, err)
	}

	end := to.AddDate(0, 0, 1) // [from, to] inclusive

	opening := decimal.Zero
	var rows []LedgerRow

	for _, inv := range invoices {
		switch {
		case inv.Date.Before(from):
			if inv.Payload.IsCredit {
				opening = opening.Add(inv.Total)
			}
		case inv.Date.Before(end):
			row := LedgerRow{
				Date:        inv.Date,
				Type:        RowTypeInvoice,
				ReferenceNo: inv.Payload.InvoiceNumber,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
			if inv.Payload.IsCredit {
				row.Particulars = particularsCreditSale
				row.Debit = inv.Total
			} else {
				row.Particulars = particularsCashSale
			}
			rows = append(rows, row)
		}
	}

	for _, rec := range receipts {
		switch {
		case rec.Date.Before(from):
			opening = opening.Sub(rec.Amount)
		case rec.Date.Before(end):
			rows = append(rows, LedgerRow{
				Date:        rec.Date,
				Particulars: particularsPayment,
				Type:        RowTypeReceipt,
				ReferenceNo: rec.Payload.ReceiptNumber,
				Debit:       decimal.Zero,
				Credit:      rec.Amount,
			})
		}
	}

	// Stable sort keeps same-day invoices ahead of same-day receipts.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	running := opening
	for i := range rows {
		running = running.Add(rows[i].Debit).Sub(rows[i].Credit)
		rows[i].Balance = running
	}

	return &Statement{
		CompanyDocID:   companyDocID,
		CompanyName:    companyName,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Rows:           rows,
		ClosingBalance: running,
	}, nil
}
