package core_test

import (
	"context"
	"testing"

	"billbook/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSaveValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.prices.Save(ctx, core.PriceItem{Price: d("1.000")})
	assert.ErrorIs(t, err, core.ErrMissingItemName)

	_, err = f.prices.Save(ctx, core.PriceItem{ItemName: "Widget", Price: d("-1.000")})
	assert.ErrorIs(t, err, core.ErrNegativePrice)

	_, err = f.prices.Save(ctx, core.PriceItem{ItemName: "Free sample"})
	assert.NoError(t, err, "a zero price is allowed")
}

func TestPriceSaveRequiresOnline(t *testing.T) {
	f := newFixture(t)
	f.remote.SetOnline(false)
	ctx := context.Background()

	_, err := f.prices.Save(ctx, core.PriceItem{ItemName: "Widget", Price: d("2.500")})
	assert.ErrorIs(t, err, core.ErrOffline)

	items, err := f.prices.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "offline saves must not touch the local mirror either")
}

func TestPriceSaveWritesRemoteFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.remote.FailWrites(true)

	_, err := f.prices.Save(ctx, core.PriceItem{ItemName: "Widget", Price: d("2.500")})
	require.Error(t, err)

	items, err := f.prices.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "local mirror updates only after the remote write succeeds")
}

func TestPriceSaveAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.prices.Save(ctx, core.PriceItem{ItemName: "Widget", Price: d("2.500")})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.DocID)

	// Update through the same route keeps the document id.
	saved.Price = d("3.000")
	again, err := f.prices.Save(ctx, *saved)
	require.NoError(t, err)
	assert.Equal(t, saved.DocID, again.DocID)

	items, err := f.prices.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Price.Equal(d("3.000")))

	require.NoError(t, f.prices.Delete(ctx, saved.DocID))

	items, err = f.prices.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPriceDeleteRequiresOnline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.prices.Save(ctx, core.PriceItem{ItemName: "Widget", Price: d("2.500")})
	require.NoError(t, err)

	f.remote.SetOnline(false)
	assert.ErrorIs(t, f.prices.Delete(ctx, saved.DocID), core.ErrOffline)
}
