package memory

import (
	"context"
	"sync"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

// IDをキーにしたmapで在庫SKUを保持する
type InventorySKUMemoryRepository struct {
	mu   sync.RWMutex
	skus map[string]model.InventorySKU
}

func NewInventorySKUMemoryRepository() *InventorySKUMemoryRepository {
	return &InventorySKUMemoryRepository{
		skus: make(map[string]model.InventorySKU),
	}
}

var _ repo.InventorySKURepository = (*InventorySKUMemoryRepository)(nil)

func (r *InventorySKUMemoryRepository) Save(ctx context.Context, sku model.InventorySKU) (model.InventorySKU, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.skus[sku.ID] = sku
	return sku, nil
}

func (r *InventorySKUMemoryRepository) FindByID(ctx context.Context, id string) (model.InventorySKU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sku, ok := r.skus[id]
	if !ok {
		return model.InventorySKU{}, repo.ErrNotFound
	}
	return sku, nil
}

func (r *InventorySKUMemoryRepository) FindBySKUCode(ctx context.Context, skuCode string) (model.InventorySKU, error) {
	return r.findOne(func(s model.InventorySKU) bool {
		return s.SKUCode == skuCode
	})
}

// 直列化はTxManager側で行うのでFindByIDと同じ
func (r *InventorySKUMemoryRepository) FindByIDForUpdate(ctx context.Context, id string) (model.InventorySKU, error) {
	return r.FindByID(ctx, id)
}

func (r *InventorySKUMemoryRepository) FindBySKUCodeAndWarehouse(ctx context.Context, skuCode string, warehouseID string) (model.InventorySKU, error) {
	return r.findOne(func(s model.InventorySKU) bool {
		return s.SKUCode == skuCode && s.WarehouseID == warehouseID
	})
}

func (r *InventorySKUMemoryRepository) FindByWarehouse(ctx context.Context, warehouseID string) ([]model.InventorySKU, error) {
	return r.filter(func(s model.InventorySKU) bool {
		return s.WarehouseID == warehouseID
	}), nil
}

func (r *InventorySKUMemoryRepository) FindByProductID(ctx context.Context, productID string) ([]model.InventorySKU, error) {
	return r.filter(func(s model.InventorySKU) bool {
		return s.ProductID == productID
	}), nil
}

func (r *InventorySKUMemoryRepository) FindAll(ctx context.Context) ([]model.InventorySKU, error) {
	return r.filter(func(model.InventorySKU) bool { return true }), nil
}

func (r *InventorySKUMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.skus, id)
	return nil
}

// 条件に合う最初の1件（作成順）
func (r *InventorySKUMemoryRepository) findOne(match func(model.InventorySKU) bool) (model.InventorySKU, error) {
	found := r.filter(match)
	if len(found) == 0 {
		return model.InventorySKU{}, repo.ErrNotFound
	}
	return found[0], nil
}

func (r *InventorySKUMemoryRepository) filter(match func(model.InventorySKU) bool) []model.InventorySKU {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.InventorySKU, 0)
	for _, s := range r.skus {
		if match(s) {
			out = append(out, s)
		}
	}
	sortByCreated(out, func(s model.InventorySKU) (time.Time, string) { return s.CreatedAt, s.ID })
	return out
}
