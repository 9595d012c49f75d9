package memory

import (
	"context"
	"sync"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

// 追記のみの履歴
type StockMovementMemoryRepository struct {
	mu        sync.RWMutex
	movements []model.StockMovement
}

func NewStockMovementMemoryRepository() *StockMovementMemoryRepository {
	return &StockMovementMemoryRepository{}
}

var _ repo.StockMovementRepository = (*StockMovementMemoryRepository)(nil)

func (r *StockMovementMemoryRepository) Create(ctx context.Context, m model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = append(r.movements, m)
	return nil
}

func (r *StockMovementMemoryRepository) ListBySKU(ctx context.Context, inventorySKUID string) ([]model.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	//新しい順
	out := make([]model.StockMovement, 0)
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].InventorySKUID == inventorySKUID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}
