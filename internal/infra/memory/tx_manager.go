package memory

import (
	"context"
	"sync"

	repo "catalog/internal/repository"
)

// メモリストア用。読み→更新→書きの流れを1本ずつ実行する。
// ロールバックはなく、fnが失敗する前の書き込みは残る。
type TxManager struct {
	mu        sync.Mutex
	skus      *InventorySKUMemoryRepository
	movements *StockMovementMemoryRepository
}

func NewTxManager(skus *InventorySKUMemoryRepository, movements *StockMovementMemoryRepository) *TxManager {
	return &TxManager{skus: skus, movements: movements}
}

var _ repo.TransactionManager = (*TxManager)(nil)

func (tm *TxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(tm)
}

func (tm *TxManager) SKUs() repo.InventorySKURepository       { return tm.skus }
func (tm *TxManager) Movements() repo.StockMovementRepository { return tm.movements }
