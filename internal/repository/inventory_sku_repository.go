package repository

import (
	"catalog/internal/domain/model"
	"context"
)

// 在庫SKUの保存・取得の約束。
// 単件取得で見つからなければ ErrNotFound、一覧は空スライスを返す。
type InventorySKURepository interface {
	Save(ctx context.Context, sku model.InventorySKU) (model.InventorySKU, error)

	FindByID(ctx context.Context, id string) (model.InventorySKU, error)
	// トランザクション内で使う。行ロックを取ってから読む
	FindByIDForUpdate(ctx context.Context, id string) (model.InventorySKU, error)
	FindBySKUCode(ctx context.Context, skuCode string) (model.InventorySKU, error)
	FindBySKUCodeAndWarehouse(ctx context.Context, skuCode string, warehouseID string) (model.InventorySKU, error)
	FindByWarehouse(ctx context.Context, warehouseID string) ([]model.InventorySKU, error)
	FindByProductID(ctx context.Context, productID string) ([]model.InventorySKU, error)
	FindAll(ctx context.Context) ([]model.InventorySKU, error)

	Delete(ctx context.Context, id string) error
}
