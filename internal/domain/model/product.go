package model

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 商品。更新系メソッドは常に新しい値を返し、レシーバは変更しない。
type Product struct {
	ID          string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock       int64           `gorm:"not null" json:"stock"`
	SKU         string          `gorm:"column:sku;type:varchar(128);not null;uniqueIndex" json:"sku"`
	Category    string          `gorm:"type:varchar(128);not null;index" json:"category"`
	IsActive    bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

// 部分更新。nilのフィールドは元の値を引き継ぐ。
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int64
	SKU         *string
	Category    *string
	IsActive    *bool
}

// 全項目を検証してそのまま返す
func NewProduct(id, name, description string, price decimal.Decimal, stock int64, sku, category string, isActive bool, createdAt, updatedAt time.Time) (Product, error) {
	if !price.IsPositive() {
		return Product{}, invalid("Price must be greater than 0")
	}
	if stock < 0 {
		return Product{}, invalid("Stock cannot be negative")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, invalid("Product name is required")
	}
	if strings.TrimSpace(sku) == "" {
		return Product{}, invalid("SKU is required")
	}

	return Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		SKU:         sku,
		Category:    category,
		IsActive:    isActive,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// 新規IDを振って商品を作る
func CreateProduct(name, description string, price decimal.Decimal, stock int64, sku, category string, isActive bool, now time.Time) (Product, error) {
	return NewProduct(uuid.NewString(), name, description, price, stock, sku, category, isActive, now, now)
}

// patchを当てた新しい商品を返す
func (p Product) Update(patch ProductPatch, now time.Time) (Product, error) {
	name := p.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	description := p.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	price := p.Price
	if patch.Price != nil {
		price = *patch.Price
	}
	stock := p.Stock
	if patch.Stock != nil {
		stock = *patch.Stock
	}
	sku := p.SKU
	if patch.SKU != nil {
		sku = *patch.SKU
	}
	category := p.Category
	if patch.Category != nil {
		category = *patch.Category
	}
	isActive := p.IsActive
	if patch.IsActive != nil {
		isActive = *patch.IsActive
	}

	return NewProduct(p.ID, name, description, price, stock, sku, category, isActive, p.CreatedAt, now)
}

// 購入可能か
func (p Product) CanBePurchased(qty int64) bool {
	return p.IsActive && p.Stock >= qty
}

func (p Product) DecreaseStock(qty int64, now time.Time) (Product, error) {
	if qty <= 0 {
		return Product{}, invalid("Quantity must be greater than 0")
	}
	if p.Stock < qty {
		return Product{}, invalid("Insufficient stock")
	}
	stock := p.Stock - qty
	return p.Update(ProductPatch{Stock: &stock}, now)
}

func (p Product) IncreaseStock(qty int64, now time.Time) (Product, error) {
	if qty <= 0 {
		return Product{}, invalid("Quantity must be greater than 0")
	}
	if qty > math.MaxInt64-p.Stock {
		return Product{}, invalid("Stock exceeds the maximum quantity")
	}
	stock := p.Stock + qty
	return p.Update(ProductPatch{Stock: &stock}, now)
}

// JSONの形: priceは数値、日時はUTCミリ秒（在庫SKUと同じ）
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string      `json:"id"`
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Price       json.Number `json:"price"`
		Stock       int64       `json:"stock"`
		SKU         string      `json:"sku"`
		Category    string      `json:"category"`
		IsActive    bool        `json:"isActive"`
		CreatedAt   string      `json:"createdAt"`
		UpdatedAt   string      `json:"updatedAt"`
	}{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       json.Number(p.Price.String()),
		Stock:       p.Stock,
		SKU:         p.SKU,
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedAt:   FormatTimestamp(p.CreatedAt),
		UpdatedAt:   FormatTimestamp(p.UpdatedAt),
	})
}
