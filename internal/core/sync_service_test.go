package core_test

import (
	"context"
	"testing"

	"billbook/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncOperationsFailFastOffline(t *testing.T) {
	f := newFixture(t)
	f.remote.SetOnline(false)
	ctx := context.Background()

	_, err := f.sync.PullCompanies(ctx)
	assert.ErrorIs(t, err, core.ErrOffline)

	_, err = f.sync.PullPrices(ctx)
	assert.ErrorIs(t, err, core.ErrOffline)

	_, err = f.sync.SyncCompanies(ctx)
	assert.ErrorIs(t, err, core.ErrOffline)
}

func TestPullCompaniesRemoteWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Local company with an unsynced edit, plus a remote-side edit to the
	// same document.
	c := f.mustCreateCompany(t, "Muscat Traders")
	f.remote.SetOnline(false)
	_, err := f.companies.Update(ctx, c.DocID, core.CompanyInput{Name: "Local Edit"})
	require.NoError(t, err)
	f.remote.SetOnline(true)

	require.NoError(t, f.remote.SetCompany(ctx, c.DocID, map[string]any{
		"name":        "Remote Edit",
		"outstanding": "42.000",
	}, true))

	// A second company that only exists locally.
	f.remote.SetOnline(false)
	localOnly := f.mustCreateCompany(t, "Offline Creation")
	f.remote.SetOnline(true)

	n, err := f.sync.PullCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pulled, err := f.companies.Get(ctx, c.DocID)
	require.NoError(t, err)
	assert.Equal(t, "Remote Edit", pulled.Name, "the local unsynced edit is discarded")
	assert.True(t, pulled.Outstanding.Equal(d("42.000")))
	assert.True(t, pulled.IsSynced)

	kept, err := f.companies.Get(ctx, localOnly.DocID)
	require.NoError(t, err)
	assert.Equal(t, "Offline Creation", kept.Name, "local-only companies survive a pull")
	assert.False(t, kept.IsSynced)
}

func TestPullPricesMirrorsRemoteWholesale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.remote.SetPrice(ctx, "p1", "Widget", d("2.500")))
	require.NoError(t, f.remote.SetPrice(ctx, "p2", "Gadget", d("9.000")))

	n, err := f.sync.PullPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, err := f.prices.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Empty the remote collection; the next pull empties the local table.
	require.NoError(t, f.remote.DeletePrice(ctx, "p1"))
	require.NoError(t, f.remote.DeletePrice(ctx, "p2"))

	n, err = f.sync.PullPrices(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err = f.prices.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "an empty remote collection clears the local table")
}

func TestSyncCompaniesPushesOnlyDirtyRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	clean := f.mustCreateCompany(t, "Already Synced")
	require.True(t, clean.IsSynced)

	f.remote.SetOnline(false)
	dirty := f.mustCreateCompany(t, "Dirty Co")
	_, err := f.companies.ApplyCreditDelta(ctx, dirty.DocID, d("12.345"))
	require.NoError(t, err)
	f.remote.SetOnline(true)

	n, err := f.sync.SyncCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the dirty row is pushed")

	doc, ok := f.remote.Company(dirty.DocID)
	require.True(t, ok)
	assert.Equal(t, "Dirty Co", doc.Name)
	assert.True(t, doc.Outstanding.Equal(d("12.345")),
		"the explicit sync pushes identity and outstanding together")

	stored, err := f.companies.Get(ctx, dirty.DocID)
	require.NoError(t, err)
	assert.True(t, stored.IsSynced)

	// A second sweep has nothing left to do.
	n, err = f.sync.SyncCompanies(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSyncCompaniesStopsOnPushFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.remote.SetOnline(false)
	a := f.mustCreateCompany(t, "Alpha")
	b := f.mustCreateCompany(t, "Beta")
	f.remote.SetOnline(true)
	f.remote.FailWrites(true)

	n, err := f.sync.SyncCompanies(ctx)
	require.Error(t, err)
	assert.Zero(t, n)

	// Both rows stay dirty and the sweep is resumable.
	f.remote.FailWrites(false)
	n, err = f.sync.SyncCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{a.DocID, b.DocID} {
		stored, err := f.companies.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, stored.IsSynced)
	}
}
