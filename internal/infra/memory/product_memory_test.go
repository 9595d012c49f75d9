package memory_test

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/model"
	"catalog/internal/infra/memory"
	repo "catalog/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id, sku, category string, offset time.Duration) model.Product {
	t.Helper()
	at := base.Add(offset)
	p, err := model.NewProduct(id, "name-"+id, "", decimal.NewFromInt(100), 1, sku, category, true, at, at)
	require.NoError(t, err)
	return p
}

func seedProducts(t *testing.T) *memory.ProductMemoryRepository {
	t.Helper()
	ctx := context.Background()
	r := memory.NewProductMemoryRepository()
	for _, p := range []model.Product{
		mustProduct(t, "p2", "SKU-2", "food", time.Second),
		mustProduct(t, "p1", "SKU-1", "drinks", 0),
		mustProduct(t, "p3", "SKU-3", "drinks", 2*time.Second),
	} {
		_, err := r.Save(ctx, p)
		require.NoError(t, err)
	}
	return r
}

func TestProductMemory_FindByIDAndSKU(t *testing.T) {
	ctx := context.Background()
	r := seedProducts(t)

	p, err := r.FindByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "SKU-2", p.SKU)

	p, err = r.FindBySKU(ctx, "SKU-3")
	require.NoError(t, err)
	assert.Equal(t, "p3", p.ID)

	_, err = r.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.FindBySKU(ctx, "nope")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductMemory_Lists(t *testing.T) {
	ctx := context.Background()
	r := seedProducts(t)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, "p3", all[2].ID)

	drinks, err := r.FindByCategory(ctx, "drinks")
	require.NoError(t, err)
	require.Len(t, drinks, 2)
	assert.Equal(t, "p1", drinks[0].ID)

	none, err := r.FindByCategory(ctx, "toys")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductMemory_ExistsBySKU(t *testing.T) {
	ctx := context.Background()
	r := seedProducts(t)

	ok, err := r.ExistsBySKU(ctx, "SKU-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ExistsBySKU(ctx, "SKU-9")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductMemory_Delete(t *testing.T) {
	ctx := context.Background()
	r := seedProducts(t)

	require.NoError(t, r.Delete(ctx, "p1"))
	require.NoError(t, r.Delete(ctx, "p1"))
	_, err := r.FindByID(ctx, "p1")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p2", all[0].ID)
	assert.Equal(t, "p3", all[1].ID)
}

func TestStockMovementMemory_ListBySKU_NewestFirst(t *testing.T) {
	ctx := context.Background()
	r := memory.NewStockMovementMemoryRepository()

	require.NoError(t, r.Create(ctx, model.StockMovement{ID: "m1", InventorySKUID: "s1", Type: model.StockMovementAdd, Quantity: 5}))
	require.NoError(t, r.Create(ctx, model.StockMovement{ID: "m2", InventorySKUID: "s2", Type: model.StockMovementAdd, Quantity: 1}))
	require.NoError(t, r.Create(ctx, model.StockMovement{ID: "m3", InventorySKUID: "s1", Type: model.StockMovementReserve, Quantity: 2}))

	got, err := r.ListBySKU(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m3", got[0].ID)
	assert.Equal(t, "m1", got[1].ID)

	empty, err := r.ListBySKU(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
