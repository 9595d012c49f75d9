package model

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 倉庫ごとの在庫行（SKU）
type InventorySKU struct {
	ID               string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	SKUCode          string    `gorm:"column:sku_code;type:varchar(128);not null;index:idx_sku_code_warehouse,unique" json:"skuCode"`
	ProductID        string    `gorm:"column:product_id;type:varchar(128);not null;index" json:"productId"`
	WarehouseID      string    `gorm:"column:warehouse_id;type:varchar(128);not null;index:idx_sku_code_warehouse,unique" json:"warehouseId"`
	Quantity         int64     `gorm:"not null" json:"quantity"`
	ReservedQuantity int64     `gorm:"not null;default:0" json:"reservedQuantity"`
	MinStockLevel    int64     `gorm:"not null" json:"minStockLevel"`
	MaxStockLevel    int64     `gorm:"not null" json:"maxStockLevel"`
	CreatedAt        time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null" json:"updatedAt"`
}

// NewInventorySKUの入力。IDと日時は省略でき、ゼロ値なら埋める。
type InventorySKUProps struct {
	ID               string
	SKUCode          string
	ProductID        string
	WarehouseID      string
	Quantity         int64
	ReservedQuantity int64
	MinStockLevel    int64
	MaxStockLevel    int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// 検証してからSKUを作る
func NewInventorySKU(p InventorySKUProps) (InventorySKU, error) {
	if err := validateSKUProps(p); err != nil {
		return InventorySKU{}, err
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now()
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	return InventorySKU{
		ID:               id,
		SKUCode:          p.SKUCode,
		ProductID:        p.ProductID,
		WarehouseID:      p.WarehouseID,
		Quantity:         p.Quantity,
		ReservedQuantity: p.ReservedQuantity,
		MinStockLevel:    p.MinStockLevel,
		MaxStockLevel:    p.MaxStockLevel,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func validateSKUProps(p InventorySKUProps) error {
	if strings.TrimSpace(p.SKUCode) == "" {
		return invalid("SKU code is required")
	}
	if strings.TrimSpace(p.ProductID) == "" {
		return invalid("Product ID is required")
	}
	if strings.TrimSpace(p.WarehouseID) == "" {
		return invalid("Warehouse ID is required")
	}
	if p.Quantity < 0 {
		return invalid("Quantity cannot be negative")
	}
	if p.ReservedQuantity < 0 {
		return invalid("Reserved quantity cannot be negative")
	}
	if p.ReservedQuantity > p.Quantity {
		return invalid("Reserved quantity cannot exceed total quantity")
	}
	if p.MinStockLevel > p.MaxStockLevel {
		return invalid("Min stock level cannot exceed max stock level")
	}
	return nil
}

// 引当可能数 = 在庫数 - 予約数
func (s *InventorySKU) AvailableQuantity() int64 {
	return s.Quantity - s.ReservedQuantity
}

func (s *InventorySKU) IsLowStock() bool {
	return s.Quantity < s.MinStockLevel
}

func (s *InventorySKU) IsOverStock() bool {
	return s.Quantity > s.MaxStockLevel
}

// 入庫
func (s *InventorySKU) AddStock(qty int64, now time.Time) error {
	if qty <= 0 {
		return invalid("Add quantity must be positive")
	}
	if qty > math.MaxInt64-s.Quantity {
		return invalid("Quantity exceeds the maximum stock")
	}
	s.Quantity += qty
	s.UpdatedAt = now
	return nil
}

// 出庫（予約分には手を付けない）
func (s *InventorySKU) RemoveStock(qty int64, now time.Time) error {
	if qty <= 0 {
		return invalid("Remove quantity must be positive")
	}
	if qty > s.AvailableQuantity() {
		return invalid("Insufficient available stock")
	}
	s.Quantity -= qty
	s.UpdatedAt = now
	return nil
}

// 予約
func (s *InventorySKU) ReserveStock(qty int64, now time.Time) error {
	if qty <= 0 {
		return invalid("Reserve quantity must be positive")
	}
	if qty > s.AvailableQuantity() {
		return invalid("Insufficient available stock for reservation")
	}
	s.ReservedQuantity += qty
	s.UpdatedAt = now
	return nil
}

// 予約解除
func (s *InventorySKU) ReleaseReservation(qty int64, now time.Time) error {
	if qty <= 0 {
		return invalid("Release quantity must be positive")
	}
	if qty > s.ReservedQuantity {
		return invalid("Cannot release more than reserved quantity")
	}
	s.ReservedQuantity -= qty
	s.UpdatedAt = now
	return nil
}
