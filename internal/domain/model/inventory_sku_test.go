package model_test

import (
	"math"
	"testing"
	"time"

	"catalog/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSKUProps() model.InventorySKUProps {
	return model.InventorySKUProps{
		SKUCode:          "SKU-001",
		ProductID:        "PROD-001",
		WarehouseID:      "WH-001",
		Quantity:         100,
		ReservedQuantity: 10,
		MinStockLevel:    20,
		MaxStockLevel:    500,
	}
}

func TestNewInventorySKU_Success(t *testing.T) {
	sku, err := model.NewInventorySKU(validSKUProps())
	require.NoError(t, err)

	assert.NotEmpty(t, sku.ID)
	assert.Equal(t, "SKU-001", sku.SKUCode)
	assert.Equal(t, int64(90), sku.AvailableQuantity())
	assert.False(t, sku.IsLowStock())
	assert.False(t, sku.IsOverStock())
	assert.False(t, sku.CreatedAt.IsZero())
	assert.False(t, sku.UpdatedAt.IsZero())
}

func TestNewInventorySKU_KeepsGivenIDAndTimestamps(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := validSKUProps()
	p.ID = "fixed-id"
	p.CreatedAt = created
	p.UpdatedAt = created

	sku, err := model.NewInventorySKU(p)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", sku.ID)
	assert.Equal(t, created, sku.CreatedAt)
	assert.Equal(t, created, sku.UpdatedAt)
}

func TestNewInventorySKU_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *model.InventorySKUProps)
		want   string
	}{
		{"blank sku code", func(p *model.InventorySKUProps) { p.SKUCode = "  " }, "SKU code is required"},
		{"blank product", func(p *model.InventorySKUProps) { p.ProductID = "" }, "Product ID is required"},
		{"blank warehouse", func(p *model.InventorySKUProps) { p.WarehouseID = "" }, "Warehouse ID is required"},
		{"negative quantity", func(p *model.InventorySKUProps) { p.Quantity = -1; p.ReservedQuantity = 0 }, "Quantity cannot be negative"},
		{"negative reserved", func(p *model.InventorySKUProps) { p.ReservedQuantity = -1 }, "Reserved quantity cannot be negative"},
		{"reserved over quantity", func(p *model.InventorySKUProps) { p.ReservedQuantity = 101 }, "Reserved quantity cannot exceed total quantity"},
		{"min over max", func(p *model.InventorySKUProps) { p.MinStockLevel = 600 }, "Min stock level cannot exceed max stock level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validSKUProps()
			tc.mutate(&p)

			_, err := model.NewInventorySKU(p)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
			assert.True(t, model.IsValidationError(err))
		})
	}
}

func TestNewInventorySKU_ReservedEqualToQuantityAllowed(t *testing.T) {
	p := validSKUProps()
	p.ReservedQuantity = p.Quantity

	sku, err := model.NewInventorySKU(p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sku.AvailableQuantity())
}

func TestInventorySKU_StockLevels(t *testing.T) {
	p := validSKUProps()
	p.Quantity = 10
	p.ReservedQuantity = 0
	low, err := model.NewInventorySKU(p)
	require.NoError(t, err)
	assert.True(t, low.IsLowStock())

	p.Quantity = 600
	over, err := model.NewInventorySKU(p)
	require.NoError(t, err)
	assert.True(t, over.IsOverStock())
	assert.False(t, over.IsLowStock())
}

func TestInventorySKU_AddAndRemoveStock(t *testing.T) {
	sku, err := model.NewInventorySKU(validSKUProps())
	require.NoError(t, err)
	now := sku.UpdatedAt.Add(time.Minute)

	require.NoError(t, sku.AddStock(50, now))
	assert.Equal(t, int64(150), sku.Quantity)
	assert.Equal(t, now, sku.UpdatedAt)

	require.NoError(t, sku.RemoveStock(140, now))
	assert.Equal(t, int64(10), sku.Quantity)

	err = sku.RemoveStock(1, now)
	assert.EqualError(t, err, "Insufficient available stock")
	assert.Equal(t, int64(10), sku.Quantity)

	assert.EqualError(t, sku.AddStock(0, now), "Add quantity must be positive")
	assert.EqualError(t, sku.RemoveStock(-2, now), "Remove quantity must be positive")
}

func TestInventorySKU_AddStock_RejectsOverflow(t *testing.T) {
	sku, err := model.NewInventorySKU(validSKUProps())
	require.NoError(t, err)
	before := sku.UpdatedAt

	err = sku.AddStock(math.MaxInt64, before.Add(time.Minute))
	assert.EqualError(t, err, "Quantity exceeds the maximum stock")
	assert.Equal(t, int64(100), sku.Quantity)
	assert.Equal(t, before, sku.UpdatedAt)

	require.NoError(t, sku.AddStock(math.MaxInt64-100, before))
	assert.Equal(t, int64(math.MaxInt64), sku.Quantity)
	assert.Error(t, sku.AddStock(1, before))
}

func TestInventorySKU_ReserveAndRelease(t *testing.T) {
	sku, err := model.NewInventorySKU(validSKUProps())
	require.NoError(t, err)
	now := time.Now()

	require.NoError(t, sku.ReserveStock(90, now))
	assert.Equal(t, int64(100), sku.ReservedQuantity)
	assert.Equal(t, int64(0), sku.AvailableQuantity())

	assert.EqualError(t, sku.ReserveStock(1, now), "Insufficient available stock for reservation")
	assert.EqualError(t, sku.ReserveStock(0, now), "Reserve quantity must be positive")

	require.NoError(t, sku.ReleaseReservation(40, now))
	assert.Equal(t, int64(60), sku.ReservedQuantity)

	assert.EqualError(t, sku.ReleaseReservation(61, now), "Cannot release more than reserved quantity")
	assert.EqualError(t, sku.ReleaseReservation(0, now), "Release quantity must be positive")
	assert.Equal(t, int64(60), sku.ReservedQuantity)
}
