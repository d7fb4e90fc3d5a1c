package core_test

import (
	"context"
	"testing"

	"billbook/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLedger records one credit sale before the window, then a cash sale, a
// credit sale, and a payment inside it.
func seedLedger(t *testing.T, f *fixture) *core.Company {
	t.Helper()
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")

	_, err := f.invoices.Create(ctx, creditInput(c.DocID, "2025-12-20",
		core.InvoiceLine{Name: "Old stock", UnitPrice: d("100.000"), Quantity: 1}))
	require.NoError(t, err)

	_, err = f.invoices.Create(ctx, core.InvoiceInput{
		CompanyDocID: c.DocID,
		Date:         day("2026-01-05"),
		Items:        []core.InvoiceLine{{Name: "Cash item", UnitPrice: d("7.000"), Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.invoices.Create(ctx, creditInput(c.DocID, "2026-01-10",
		core.InvoiceLine{Name: "Widget", UnitPrice: d("40.000"), Quantity: 1}))
	require.NoError(t, err)

	_, err = f.receipts.Create(ctx, core.ReceiptInput{
		CompanyDocID: c.DocID,
		Amount:       d("25.000"),
		Date:         day("2026-01-12"),
	})
	require.NoError(t, err)

	return c
}

func TestStatementOpeningAndRunningBalance(t *testing.T) {
	f := newFixture(t)
	c := seedLedger(t, f)

	st, err := f.statement.Build(context.Background(), c.DocID, day("2026-01-01"), day("2026-01-31"))
	require.NoError(t, err)

	assert.Equal(t, "Muscat Traders", st.CompanyName)
	assert.True(t, st.OpeningBalance.Equal(d("100.000")),
		"opening = %s", st.OpeningBalance)

	require.Len(t, st.Rows, 3)

	// Cash sale: recorded but balance-neutral.
	cash := st.Rows[0]
	assert.Equal(t, "Cash sale", cash.Particulars)
	assert.Equal(t, core.RowTypeInvoice, cash.Type)
	assert.True(t, cash.Debit.IsZero())
	assert.True(t, cash.Credit.IsZero())
	assert.True(t, cash.Balance.Equal(d("100.000")))

	credit := st.Rows[1]
	assert.Equal(t, "Credit sale", credit.Particulars)
	assert.True(t, credit.Debit.Equal(d("40.000")))
	assert.True(t, credit.Balance.Equal(d("140.000")))

	payment := st.Rows[2]
	assert.Equal(t, "Payment received", payment.Particulars)
	assert.Equal(t, core.RowTypeReceipt, payment.Type)
	assert.True(t, payment.Credit.Equal(d("25.000")))
	assert.True(t, payment.Balance.Equal(d("115.000")))

	assert.True(t, st.ClosingBalance.Equal(d("115.000")))
}

func TestStatementClosingIdentity(t *testing.T) {
	f := newFixture(t)
	c := seedLedger(t, f)

	st, err := f.statement.Build(context.Background(), c.DocID, day("2026-01-01"), day("2026-01-31"))
	require.NoError(t, err)

	sum := st.OpeningBalance
	for _, row := range st.Rows {
		sum = sum.Add(row.Debit).Sub(row.Credit)
	}
	assert.True(t, st.ClosingBalance.Equal(sum),
		"closing %s != opening + debits - credits %s", st.ClosingBalance, sum)
}

func TestStatementWindowIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")

	line := core.InvoiceLine{Name: "Widget", UnitPrice: d("10.000"), Quantity: 1}
	for _, date := range []string{"2026-01-01", "2026-01-31", "2026-02-01"} {
		_, err := f.invoices.Create(ctx, creditInput(c.DocID, date, line))
		require.NoError(t, err)
	}

	st, err := f.statement.Build(ctx, c.DocID, day("2026-01-01"), day("2026-01-31"))
	require.NoError(t, err)

	// Both boundary days are in; the February bill is out.
	require.Len(t, st.Rows, 2)
	assert.True(t, st.Rows[0].Date.Equal(day("2026-01-01")))
	assert.True(t, st.Rows[1].Date.Equal(day("2026-01-31")))
	assert.True(t, st.OpeningBalance.IsZero())
}

func TestStatementSameDayInvoiceBeforeReceipt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")

	_, err := f.invoices.Create(ctx, creditInput(c.DocID, "2026-01-10",
		core.InvoiceLine{Name: "Widget", UnitPrice: d("10.000"), Quantity: 1}))
	require.NoError(t, err)

	_, err = f.receipts.Create(ctx, core.ReceiptInput{
		CompanyDocID: c.DocID,
		Amount:       d("10.000"),
		Date:         day("2026-01-10"),
	})
	require.NoError(t, err)

	st, err := f.statement.Build(ctx, c.DocID, day("2026-01-01"), day("2026-01-31"))
	require.NoError(t, err)

	require.Len(t, st.Rows, 2)
	assert.Equal(t, core.RowTypeInvoice, st.Rows[0].Type)
	assert.Equal(t, core.RowTypeReceipt, st.Rows[1].Type)

	// The running balance never dips below zero in this ordering.
	assert.True(t, st.Rows[0].Balance.Equal(d("10.000")))
	assert.True(t, st.Rows[1].Balance.IsZero())
}

func TestStatementForDeletedCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := seedLedger(t, f)

	require.NoError(t, f.companies.Delete(ctx, c.DocID))

	st, err := f.statement.Build(ctx, c.DocID, day("2026-01-01"), day("2026-01-31"))
	require.NoError(t, err, "orphaned transactions must stay reportable")
	assert.Empty(t, st.CompanyName)
	assert.Len(t, st.Rows, 3)
}

func TestStatementEmptyRange(t *testing.T) {
	f := newFixture(t)
	c := seedLedger(t, f)

	st, err := f.statement.Build(context.Background(), c.DocID, day("2027-01-01"), day("2027-01-31"))
	require.NoError(t, err)

	assert.Empty(t, st.Rows)
	// Everything is now history: 100 + 40 credit sales - 25 payment.
	assert.True(t, st.OpeningBalance.Equal(d("115.000")))
	assert.True(t, st.ClosingBalance.Equal(st.OpeningBalance))
}
