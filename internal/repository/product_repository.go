package repository

import (
	"catalog/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一意制約に引っかかった
var ErrDuplicate = errors.New("duplicate")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// IDで上書き保存（upsert）
	Save(ctx context.Context, p model.Product) (model.Product, error)

	FindByID(ctx context.Context, id string) (model.Product, error)
	FindBySKU(ctx context.Context, sku string) (model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)

	// 存在しないIDは何もしない
	Delete(ctx context.Context, id string) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
