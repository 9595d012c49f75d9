package repository

import (
	"context"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type stockMovementGormRepository struct {
	db *gorm.DB
}

func NewStockMovementGormRepository(db *gorm.DB) repo.StockMovementRepository {
	return &stockMovementGormRepository{db: db}
}

func (r *stockMovementGormRepository) Create(ctx context.Context, m model.StockMovement) error {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	return nil
}

func (r *stockMovementGormRepository) ListBySKU(ctx context.Context, inventorySKUID string) ([]model.StockMovement, error) {
	//新しい順
	movements := []model.StockMovement{}
	err := r.db.WithContext(ctx).
		Where("inventory_sku_id = ?", inventorySKUID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}
