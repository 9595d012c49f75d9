package repository

import (
	"context"

	"catalog/internal/domain/model"
)

// 在庫変動履歴の保存・一覧取得の約束。
type StockMovementRepository interface {
	//履歴を1件保存
	Create(ctx context.Context, m model.StockMovement) error

	//SKUの履歴を新しい順で取得
	ListBySKU(ctx context.Context, inventorySKUID string) ([]model.StockMovement, error)
}
