package product

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []*Products {
	return []*Products{
		{Id: "b", Title: "Blue Denim Jeans", Category: "jeans", Brand: "DenimCo", Price: 1500},
		{Id: "a", Title: "White Tee", Description: "Soft cotton t-shirt", Category: "t-shirts", Price: 500, Rating: 7, DiscountPercentage: -5},
		{Id: "c", Title: "Leather Belt", Category: "accessories", Brand: "Denimish", Price: 800},
		nil,
		{Id: "  ", Title: "no id"},
	}
}

func TestMemoryCatalogSearch(t *testing.T) {
	m := NewMemoryCatalogModel(sample()...)
	ctx := context.Background()

	got, err := m.SearchCtx(ctx, "DENIM")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Id)
	assert.Equal(t, "c", got[1].Id)

	got, err = m.SearchCtx(ctx, "t-shirt")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Id)

	got, err = m.SearchCtx(ctx, "velvet")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryCatalogNormalizes(t *testing.T) {
	m := NewMemoryCatalogModel(sample()...)
	got, err := m.SearchCtx(context.Background(), "white tee")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5.0, got[0].Rating)
	assert.Equal(t, 0.0, got[0].DiscountPercentage)
	assert.NotNil(t, got[0].Images)
	assert.NotNil(t, got[0].Reviews)
}

func TestMemoryCatalogFetchBatch(t *testing.T) {
	m := NewMemoryCatalogModel(sample()...)
	ctx := context.Background()

	got, err := m.FetchBatchCtx(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Id)
	assert.Equal(t, "b", got[1].Id)

	got, err = m.FetchBatchCtx(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Id)

	got, err = m.FetchBatchCtx(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.FetchBatchCtx(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryCatalogUpsertDelete(t *testing.T) {
	m := NewMemoryCatalogModel()
	ctx := context.Background()

	require.NoError(t, m.UpsertCtx(ctx, &Products{Id: "x", Title: "Red Scarf"}))
	require.NoError(t, m.UpsertCtx(ctx, &Products{Id: "x", Title: "Green Scarf"}))
	assert.Error(t, m.UpsertCtx(ctx, &Products{}))

	got, err := m.SearchCtx(ctx, "scarf")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Green Scarf", got[0].Title)

	require.NoError(t, m.DeleteCtx(ctx, "x"))
	assert.ErrorIs(t, m.DeleteCtx(ctx, "x"), ErrNotFound)
}

func TestLoadMemoryCatalogModel(t *testing.T) {
	dir := t.TempDir()

	arr := filepath.Join(dir, "array.json")
	require.NoError(t, os.WriteFile(arr, []byte(`[{"id":"1","title":"Linen Shirt","price":999}]`), 0o644))
	m, err := LoadMemoryCatalogModel(arr)
	require.NoError(t, err)
	got, _ := m.FetchBatchCtx(context.Background(), 10, 0)
	require.Len(t, got, 1)
	assert.Equal(t, 999.0, got[0].Price)

	wrapped := filepath.Join(dir, "wrapped.json")
	require.NoError(t, os.WriteFile(wrapped, []byte(`{"products":[{"id":"1"},{"id":"2"}]}`), 0o644))
	m, err = LoadMemoryCatalogModel(wrapped)
	require.NoError(t, err)
	got, _ = m.FetchBatchCtx(context.Background(), 10, 0)
	assert.Len(t, got, 2)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`not json`), 0o644))
	_, err = LoadMemoryCatalogModel(bad)
	assert.Error(t, err)

	_, err = LoadMemoryCatalogModel(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
