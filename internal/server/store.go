package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"catalog/internal/config"
	"catalog/internal/infra/db"
	"catalog/internal/infra/memory"
	infraRepo "catalog/internal/infra/repository"
	"catalog/internal/repository"
)

// Store はusecaseに渡すリポジトリ一式
type Store struct {
	SKUs      repository.InventorySKURepository
	Movements repository.StockMovementRepository
	Products  repository.ProductRepository
	Tx        repository.TransactionManager

	close func() error
}

func (s Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// プロセス内メモリ（デフォルト）
func MemoryStore() Store {
	skus := memory.NewInventorySKUMemoryRepository()
	movements := memory.NewStockMovementMemoryRepository()
	return Store{
		SKUs:      skus,
		Movements: movements,
		Products:  memory.NewProductMemoryRepository(),
		Tx:        memory.NewTxManager(skus, movements),
	}
}

// cfg.StoreDriverでリポジトリ一式を選ぶ
func OpenStore(cfg config.Config, log *logrus.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return MemoryStore(), nil
	case config.StorePostgres:
		gormDB, err := db.Connect(cfg, log)
		if err != nil {
			return Store{}, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.Migrate(gormDB); err != nil {
			return Store{}, fmt.Errorf("migrate: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return Store{}, err
		}
		return Store{
			SKUs:      infraRepo.NewInventorySKUGormRepository(gormDB),
			Movements: infraRepo.NewStockMovementGormRepository(gormDB),
			Products:  infraRepo.NewProductGormRepository(gormDB),
			Tx:        infraRepo.NewTxManagerGorm(gormDB),
			close:     sqlDB.Close,
		}, nil
	default:
		return Store{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
