package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type SKURepoMock struct{ mock.Mock }

func (m *SKURepoMock) Save(ctx context.Context, s model.InventorySKU) (model.InventorySKU, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(context.Context, model.InventorySKU) model.InventorySKU); ok {
		return fn(ctx, s), args.Error(1)
	}
	saved, _ := args.Get(0).(model.InventorySKU)
	return saved, args.Error(1)
}

func (m *SKURepoMock) FindByID(ctx context.Context, id string) (model.InventorySKU, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.InventorySKU)
	return s, args.Error(1)
}

func (m *SKURepoMock) FindByIDForUpdate(ctx context.Context, id string) (model.InventorySKU, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.InventorySKU)
	return s, args.Error(1)
}

func (m *SKURepoMock) FindBySKUCode(ctx context.Context, code string) (model.InventorySKU, error) {
	args := m.Called(ctx, code)
	s, _ := args.Get(0).(model.InventorySKU)
	return s, args.Error(1)
}

func (m *SKURepoMock) FindBySKUCodeAndWarehouse(ctx context.Context, code string, warehouseID string) (model.InventorySKU, error) {
	args := m.Called(ctx, code, warehouseID)
	s, _ := args.Get(0).(model.InventorySKU)
	return s, args.Error(1)
}

func (m *SKURepoMock) FindByWarehouse(ctx context.Context, warehouseID string) ([]model.InventorySKU, error) {
	args := m.Called(ctx, warehouseID)
	items, _ := args.Get(0).([]model.InventorySKU)
	return items, args.Error(1)
}

func (m *SKURepoMock) FindByProductID(ctx context.Context, productID string) ([]model.InventorySKU, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.InventorySKU)
	return items, args.Error(1)
}

func (m *SKURepoMock) FindAll(ctx context.Context) ([]model.InventorySKU, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.InventorySKU)
	return items, args.Error(1)
}

func (m *SKURepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MovementRepoMock struct{ mock.Mock }

func (m *MovementRepoMock) Create(ctx context.Context, mv model.StockMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MovementRepoMock) ListBySKU(ctx context.Context, id string) ([]model.StockMovement, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.StockMovement)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Save(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, model.Product) model.Product); ok {
		return fn(ctx, p), args.Error(1)
	}
	saved, _ := args.Get(0).(model.Product)
	return saved, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySKU(ctx context.Context, sku string) (model.Product, error) {
	args := m.Called(ctx, sku)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

// Tx内でも同じモックを渡す
type directTx struct {
	skus  repo.InventorySKURepository
	moves repo.StockMovementRepository
}

func (d directTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(d)
}

func (d directTx) SKUs() repo.InventorySKURepository       { return d.skus }
func (d directTx) Movements() repo.StockMovementRepository { return d.moves }

var (
	_ repo.TransactionManager      = directTx{}
	_ repo.InventorySKURepository  = (*SKURepoMock)(nil)
	_ repo.StockMovementRepository = (*MovementRepoMock)(nil)
	_ repo.ProductRepository       = (*ProductRepoMock)(nil)
)

// 連番ID
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2024, 3, 15, 12, 30, 45, 123000000, time.UTC)

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "want *HTTPError, got %v", err) {
		assert.Equal(t, want, he.Status)
	}
}
