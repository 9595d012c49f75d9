package model

import "time"

type StockMovementType string

const (
	StockMovementAdd     StockMovementType = "ADD"
	StockMovementRemove  StockMovementType = "REMOVE"
	StockMovementReserve StockMovementType = "RESERVE"
	StockMovementRelease StockMovementType = "RELEASE"
)

//SKUの在庫変動の履歴

type StockMovement struct {
	ID             string            `gorm:"primaryKey;type:varchar(64)" json:"id"`
	InventorySKUID string            `gorm:"column:inventory_sku_id;type:varchar(64);not null;index" json:"inventorySkuId"`
	Type           StockMovementType `gorm:"type:varchar(20);not null" json:"type"`
	Quantity       int64             `gorm:"not null" json:"quantity"`
	QuantityAfter  int64             `gorm:"not null" json:"quantityAfter"`
	ReservedAfter  int64             `gorm:"not null" json:"reservedAfter"`
	CreatedAt      time.Time         `gorm:"not null;index" json:"createdAt"`
}
