package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

type InventorySKUUsecase struct {
	skuRepo      repo.InventorySKURepository
	movementRepo repo.StockMovementRepository
	tx           repo.TransactionManager
	ids          IDGenerator
	clock        Clock
}

// DI
func NewInventorySKUUsecase(
	skuRepo repo.InventorySKURepository,
	movementRepo repo.StockMovementRepository,
	tx repo.TransactionManager,
	ids IDGenerator,
	clock Clock,
) *InventorySKUUsecase {
	return &InventorySKUUsecase{
		skuRepo:      skuRepo,
		movementRepo: movementRepo,
		tx:           tx,
		ids:          ids,
		clock:        clock,
	}
}

// POST /api/inventory/skus の入力DTO
type CreateSKUInput struct {
	SKUCode          string `json:"skuCode"`
	ProductID        string `json:"productId"`
	WarehouseID      string `json:"warehouseId"`
	Quantity         int64  `json:"quantity"`
	ReservedQuantity *int64 `json:"reservedQuantity"`
	MinStockLevel    int64  `json:"minStockLevel"`
	MaxStockLevel    int64  `json:"maxStockLevel"`
}

// レスポンス用。派生値（引当可能数・過不足フラグ）も載せる。
type InventorySKUOutput struct {
	ID                string `json:"id"`
	SKUCode           string `json:"skuCode"`
	ProductID         string `json:"productId"`
	WarehouseID       string `json:"warehouseId"`
	Quantity          int64  `json:"quantity"`
	ReservedQuantity  int64  `json:"reservedQuantity"`
	AvailableQuantity int64  `json:"availableQuantity"`
	MinStockLevel     int64  `json:"minStockLevel"`
	MaxStockLevel     int64  `json:"maxStockLevel"`
	IsLowStock        bool   `json:"isLowStock"`
	IsOverStock       bool   `json:"isOverStock"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

func ToInventorySKUOutput(s model.InventorySKU) InventorySKUOutput {
	return InventorySKUOutput{
		ID:                s.ID,
		SKUCode:           s.SKUCode,
		ProductID:         s.ProductID,
		WarehouseID:       s.WarehouseID,
		Quantity:          s.Quantity,
		ReservedQuantity:  s.ReservedQuantity,
		AvailableQuantity: s.AvailableQuantity(),
		MinStockLevel:     s.MinStockLevel,
		MaxStockLevel:     s.MaxStockLevel,
		IsLowStock:        s.IsLowStock(),
		IsOverStock:       s.IsOverStock(),
		CreatedAt:         model.FormatTimestamp(s.CreatedAt),
		UpdatedAt:         model.FormatTimestamp(s.UpdatedAt),
	}
}

// GET /api/inventory/skus の絞り込み
type SKUListFilter struct {
	WarehouseID string
	ProductID   string
}

func (u *InventorySKUUsecase) CreateSKU(ctx context.Context, in CreateSKUInput) (InventorySKUOutput, error) {
	var saved model.InventorySKU
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//同じ倉庫に同じSKUコードは作れない（別倉庫ならOK）
		_, err := r.SKUs().FindBySKUCodeAndWarehouse(ctx, in.SKUCode, in.WarehouseID)
		if err == nil {
			return NewHTTPError(http.StatusConflict, "SKU code already exists")
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		var reserved int64
		if in.ReservedQuantity != nil {
			reserved = *in.ReservedQuantity
		}

		now := u.clock.Now()
		sku, err := model.NewInventorySKU(model.InventorySKUProps{
			ID:               u.ids.NewID(),
			SKUCode:          in.SKUCode,
			ProductID:        in.ProductID,
			WarehouseID:      in.WarehouseID,
			Quantity:         in.Quantity,
			ReservedQuantity: reserved,
			MinStockLevel:    in.MinStockLevel,
			MaxStockLevel:    in.MaxStockLevel,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return domainError(err)
		}

		saved, err = r.SKUs().Save(ctx, sku)
		if errors.Is(err, repo.ErrDuplicate) {
			return NewHTTPError(http.StatusConflict, "SKU code already exists")
		}
		return err
	})
	if err != nil {
		return InventorySKUOutput{}, txError(err)
	}
	return ToInventorySKUOutput(saved), nil
}

func (u *InventorySKUUsecase) GetSKU(ctx context.Context, id string) (InventorySKUOutput, error) {
	sku, err := u.findSKU(ctx, id)
	if err != nil {
		return InventorySKUOutput{}, err
	}
	return ToInventorySKUOutput(sku), nil
}

func (u *InventorySKUUsecase) GetSKUByCode(ctx context.Context, skuCode string) (InventorySKUOutput, error) {
	sku, err := u.skuRepo.FindBySKUCode(ctx, skuCode)
	if errors.Is(err, repo.ErrNotFound) {
		return InventorySKUOutput{}, NewHTTPError(http.StatusNotFound, "SKU not found")
	}
	if err != nil {
		return InventorySKUOutput{}, internalError(err)
	}
	return ToInventorySKUOutput(sku), nil
}

func (u *InventorySKUUsecase) ListSKUs(ctx context.Context, f SKUListFilter) ([]InventorySKUOutput, error) {
	var (
		skus []model.InventorySKU
		err  error
	)
	switch {
	case f.WarehouseID != "":
		skus, err = u.skuRepo.FindByWarehouse(ctx, f.WarehouseID)
	case f.ProductID != "":
		skus, err = u.skuRepo.FindByProductID(ctx, f.ProductID)
	default:
		skus, err = u.skuRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]InventorySKUOutput, 0, len(skus))
	for _, s := range skus {
		//倉庫と商品の両方が指定されたとき
		if f.ProductID != "" && s.ProductID != f.ProductID {
			continue
		}
		out = append(out, ToInventorySKUOutput(s))
	}
	return out, nil
}

// 存在確認と削除を同じトランザクションで行う
func (u *InventorySKUUsecase) DeleteSKU(ctx context.Context, id string) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.SKUs().FindByIDForUpdate(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "SKU not found")
		}
		if err != nil {
			return err
		}
		return r.SKUs().Delete(ctx, id)
	})
	if err != nil {
		return txError(err)
	}
	return nil
}

func (u *InventorySKUUsecase) AddStock(ctx context.Context, id string, qty int64) (InventorySKUOutput, error) {
	return u.adjust(ctx, id, qty, model.StockMovementAdd, (*model.InventorySKU).AddStock)
}

func (u *InventorySKUUsecase) RemoveStock(ctx context.Context, id string, qty int64) (InventorySKUOutput, error) {
	return u.adjust(ctx, id, qty, model.StockMovementRemove, (*model.InventorySKU).RemoveStock)
}

func (u *InventorySKUUsecase) ReserveStock(ctx context.Context, id string, qty int64) (InventorySKUOutput, error) {
	return u.adjust(ctx, id, qty, model.StockMovementReserve, (*model.InventorySKU).ReserveStock)
}

func (u *InventorySKUUsecase) ReleaseReservation(ctx context.Context, id string, qty int64) (InventorySKUOutput, error) {
	return u.adjust(ctx, id, qty, model.StockMovementRelease, (*model.InventorySKU).ReleaseReservation)
}

// 在庫変動の履歴（新しい順）
func (u *InventorySKUUsecase) ListMovements(ctx context.Context, id string) ([]model.StockMovement, error) {
	if _, err := u.findSKU(ctx, id); err != nil {
		return nil, err
	}
	ms, err := u.movementRepo.ListBySKU(ctx, id)
	if err != nil {
		return nil, internalError(err)
	}
	return ms, nil
}

// 取得 → エンティティ操作 → 保存 → 履歴作成（1トランザクション）
func (u *InventorySKUUsecase) adjust(
	ctx context.Context,
	id string,
	qty int64,
	typ model.StockMovementType,
	op func(s *model.InventorySKU, qty int64, now time.Time) error,
) (InventorySKUOutput, error) {
	var saved model.InventorySKU
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		sku, err := r.SKUs().FindByIDForUpdate(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "SKU not found")
		}
		if err != nil {
			return err
		}

		now := u.clock.Now()
		if err := op(&sku, qty, now); err != nil {
			return domainError(err)
		}

		saved, err = r.SKUs().Save(ctx, sku)
		if err != nil {
			return err
		}

		return r.Movements().Create(ctx, model.StockMovement{
			ID:             u.ids.NewID(),
			InventorySKUID: saved.ID,
			Type:           typ,
			Quantity:       qty,
			QuantityAfter:  saved.Quantity,
			ReservedAfter:  saved.ReservedQuantity,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return InventorySKUOutput{}, txError(err)
	}
	return ToInventorySKUOutput(saved), nil
}

func (u *InventorySKUUsecase) findSKU(ctx context.Context, id string) (model.InventorySKU, error) {
	sku, err := u.skuRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.InventorySKU{}, NewHTTPError(http.StatusNotFound, "SKU not found")
	}
	if err != nil {
		return model.InventorySKU{}, internalError(err)
	}
	return sku, nil
}

// エンティティの検証エラーは400、それ以外は500
func domainError(err error) error {
	if model.IsValidationError(err) {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return internalError(err)
}

// Tx内で返したHTTPErrorはそのまま、それ以外は500
func txError(err error) error {
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	return internalError(err)
}
