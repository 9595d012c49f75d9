package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// 商品の保存（IDがあれば更新、なければ作成）
func (r *ProductGormRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Save(&p).Error; err != nil {
		return model.Product{}, translate(err)
	}
	return p, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductGormRepository) FindBySKU(ctx context.Context, sku string) (model.Product, error) {
	return r.first(ctx, "sku = ?", sku)
}

func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r *ProductGormRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("category = ?", category))
}

// 商品削除（存在しなくてもエラーにしない）
func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *ProductGormRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("sku = ?", sku).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductGormRepository) first(ctx context.Context, query string, arg any) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where(query, arg).Order("created_at asc").Order("id asc").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) find(ctx context.Context, tx *gorm.DB) ([]model.Product, error) {
	products := []model.Product{}
	if err := tx.Order("created_at asc").Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}
