package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventorySKUGormRepository struct {
	db *gorm.DB
}

func NewInventorySKUGormRepository(db *gorm.DB) *InventorySKUGormRepository {
	return &InventorySKUGormRepository{db: db}
}

var _ repo.InventorySKURepository = (*InventorySKUGormRepository)(nil)

// SKUの保存（upsert）
func (r *InventorySKUGormRepository) Save(ctx context.Context, sku model.InventorySKU) (model.InventorySKU, error) {
	if err := r.db.WithContext(ctx).Save(&sku).Error; err != nil {
		return model.InventorySKU{}, translate(err)
	}
	return sku, nil
}

func (r *InventorySKUGormRepository) FindByID(ctx context.Context, id string) (model.InventorySKU, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// SELECT ... FOR UPDATE（コミットまで他の在庫操作を待たせる）
func (r *InventorySKUGormRepository) FindByIDForUpdate(ctx context.Context, id string) (model.InventorySKU, error) {
	return r.first(r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id))
}

func (r *InventorySKUGormRepository) FindBySKUCode(ctx context.Context, skuCode string) (model.InventorySKU, error) {
	return r.first(r.db.WithContext(ctx).Where("sku_code = ?", skuCode))
}

// 同じ倉庫に同じSKUコードがあるか
func (r *InventorySKUGormRepository) FindBySKUCodeAndWarehouse(ctx context.Context, skuCode string, warehouseID string) (model.InventorySKU, error) {
	return r.first(r.db.WithContext(ctx).Where("sku_code = ? AND warehouse_id = ?", skuCode, warehouseID))
}

func (r *InventorySKUGormRepository) FindByWarehouse(ctx context.Context, warehouseID string) ([]model.InventorySKU, error) {
	return r.find(r.db.WithContext(ctx).Where("warehouse_id = ?", warehouseID))
}

func (r *InventorySKUGormRepository) FindByProductID(ctx context.Context, productID string) ([]model.InventorySKU, error) {
	return r.find(r.db.WithContext(ctx).Where("product_id = ?", productID))
}

func (r *InventorySKUGormRepository) FindAll(ctx context.Context) ([]model.InventorySKU, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *InventorySKUGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.InventorySKU{}, "id = ?", id).Error
}

func (r *InventorySKUGormRepository) first(tx *gorm.DB) (model.InventorySKU, error) {
	var sku model.InventorySKU
	err := tx.Order("created_at asc").Order("id asc").First(&sku).Error
	if isNotFound(err) {
		return model.InventorySKU{}, repo.ErrNotFound
	}
	if err != nil {
		return model.InventorySKU{}, err
	}
	return sku, nil
}

func (r *InventorySKUGormRepository) find(tx *gorm.DB) ([]model.InventorySKU, error) {
	skus := []model.InventorySKU{}
	if err := tx.Order("created_at asc").Order("id asc").Find(&skus).Error; err != nil {
		return []model.InventorySKU{}, err
	}
	return skus, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// unique_violation
const pgUniqueViolation = "23505"

// 一意制約違反は repo.ErrDuplicate にする
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", repo.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
