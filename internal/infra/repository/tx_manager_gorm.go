package repository

import (
	"context"

	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	skus      repo.InventorySKURepository
	movements repo.StockMovementRepository
}

func (r *txReposGorm) SKUs() repo.InventorySKURepository       { return r.skus }
func (r *txReposGorm) Movements() repo.StockMovementRepository { return r.movements }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

var _ repo.TransactionManager = (*TxManagerGorm)(nil)

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			skus:      NewInventorySKUGormRepository(tx),
			movements: NewStockMovementGormRepository(tx),
		}
		return fn(r)
	})
}
