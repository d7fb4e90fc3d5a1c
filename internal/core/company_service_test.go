package core_test

import (
	"context"
	"testing"

	"billbook/internal/core"
	"billbook/internal/remote"
	"billbook/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires every domain service over in-memory local and remote stores.
type fixture struct {
	local     *store.Memory
	remote    *remote.Memory
	companies *core.CompanyService
	invoices  *core.InvoiceService
	receipts  *core.ReceiptService
	prices    *core.PriceService
	sync      *core.SyncService
	statement *core.StatementService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	local := store.NewMemory()
	rem := remote.NewMemory()
	companies := core.NewCompanyService(local, rem, rem)
	return &fixture{
		local:     local,
		remote:    rem,
		companies: companies,
		invoices:  core.NewInvoiceService(local, companies),
		receipts:  core.NewReceiptService(local, companies),
		prices:    core.NewPriceService(local, rem, rem),
		sync:      core.NewSyncService(local, rem, rem),
		statement: core.NewStatementService(local),
	}
}

func (f *fixture) mustCreateCompany(t *testing.T, name string) *core.Company {
	t.Helper()
	c, err := f.companies.Create(context.Background(), core.CompanyInput{Name: name})
	require.NoError(t, err)
	return c
}

func TestCompanyCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.companies.Create(ctx, core.CompanyInput{
		Name:     "Muscat Traders",
		Phone:    "+968 9123 4567",
		CRNumber: "CR-1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.DocID)
	assert.True(t, c.Outstanding.IsZero())

	// Online at creation time, so the identity push succeeded and the row
	// was marked synced.
	assert.True(t, c.IsSynced)
	doc, ok := f.remote.Company(c.DocID)
	require.True(t, ok)
	assert.Equal(t, "Muscat Traders", doc.Name)
}

func TestCompanyCreateRequiresName(t *testing.T) {
	f := newFixture(t)
	_, err := f.companies.Create(context.Background(), core.CompanyInput{Phone: "123"})
	assert.ErrorIs(t, err, core.ErrMissingName)
}

func TestCompanyCreateOfflineStaysDirty(t *testing.T) {
	f := newFixture(t)
	f.remote.SetOnline(false)

	c := f.mustCreateCompany(t, "Offline Co")
	assert.False(t, c.IsSynced)

	_, ok := f.remote.Company(c.DocID)
	assert.False(t, ok, "offline create must not reach the remote store")
}

func TestCompanyUpdateDoesNotPushOutstanding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.mustCreateCompany(t, "Muscat Traders")

	// Give the company a balance, then wipe the remote copy's balance so a
	// leak from the identity push would be visible.
	_, err := f.companies.ApplyCreditDelta(ctx, c.DocID, d("50.000"))
	require.NoError(t, err)

	_, err = f.companies.Update(ctx, c.DocID, core.CompanyInput{Name: "Renamed Traders"})
	require.NoError(t, err)

	doc, ok := f.remote.Company(c.DocID)
	require.True(t, ok)
	assert.Equal(t, "Renamed Traders", doc.Name)
	assert.True(t, doc.Outstanding.Equal(d("50.000")),
		"identity push must not overwrite the remote outstanding, got %s", doc.Outstanding)
}

func TestApplyCreditDeltaAccumulates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")

	got, err := f.companies.ApplyCreditDelta(ctx, c.DocID, d("10.500"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("10.500")))

	got, err = f.companies.ApplyCreditDelta(ctx, c.DocID, d("-4.250"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("6.250")))

	doc, _ := f.remote.Company(c.DocID)
	assert.True(t, doc.Outstanding.Equal(d("6.250")))
}

func TestApplyCreditDeltaOfflineLeavesDirty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")
	f.remote.SetOnline(false)

	_, err := f.companies.ApplyCreditDelta(ctx, c.DocID, d("7.000"))
	require.NoError(t, err)

	stored, err := f.local.CompanyByID(ctx, c.DocID)
	require.NoError(t, err)
	assert.False(t, stored.IsSynced)
	assert.True(t, stored.Outstanding.Equal(d("7.000")))
}

func TestApplyCreditDeltaPushFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")
	f.remote.FailWrites(true)

	got, err := f.companies.ApplyCreditDelta(ctx, c.DocID, d("3.000"))
	require.NoError(t, err, "a failed remote push must not fail the local mutation")
	assert.True(t, got.Equal(d("3.000")))

	stored, err := f.local.CompanyByID(ctx, c.DocID)
	require.NoError(t, err)
	assert.False(t, stored.IsSynced, "failed push leaves the row dirty for the next sync")
}

func TestApplyCreditDeltaUnknownCompany(t *testing.T) {
	f := newFixture(t)
	_, err := f.companies.ApplyCreditDelta(context.Background(), "no-such-id", d("1.000"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCompanyDeleteLeavesTransactionsOrphaned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreateCompany(t, "Muscat Traders")

	inv, err := f.invoices.Create(ctx, core.InvoiceInput{
		CompanyDocID: c.DocID,
		IsCredit:     true,
		Items:        []core.InvoiceLine{{Name: "Widget", UnitPrice: d("5.000"), Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.companies.Delete(ctx, c.DocID))

	_, err = f.companies.Get(ctx, c.DocID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	// The invoice survives under the dangling company id.
	left, err := f.invoices.ListByCompany(ctx, c.DocID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, inv.DocID, left[0].DocID)

	_, ok := f.remote.Company(c.DocID)
	assert.False(t, ok, "remote document should be deleted when online")
}
