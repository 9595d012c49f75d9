package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	ids         IDGenerator
	clock       Clock
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, ids IDGenerator, clock Clock) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		ids:         ids,
		clock:       clock,
	}
}

// POST /products の入力DTO
type CreateProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	IsActive    *bool           `json:"isActive"`
}

// PATCH /products/:id の入力DTO（nilは変更なし）
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	SKU         *string          `json:"sku"`
	Category    *string          `json:"category"`
	IsActive    *bool            `json:"isActive"`
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	exists, err := u.productRepo.ExistsBySKU(ctx, in.SKU)
	if err != nil {
		return model.Product{}, internalError(err)
	}
	if exists {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Product with SKU %s already exists", in.SKU))
	}

	//isActiveの省略はtrue
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := u.clock.Now()
	p, err := model.NewProduct(u.ids.NewID(), in.Name, in.Description, in.Price, in.Stock, in.SKU, in.Category, isActive, now, now)
	if err != nil {
		return model.Product{}, domainError(err)
	}

	return u.save(ctx, p)
}

func (u *ProductUsecase) FindAll(ctx context.Context) ([]model.Product, error) {
	ps, err := u.productRepo.FindAll(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return ps, nil
}

func (u *ProductUsecase) FindOne(ctx context.Context, id string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
	}
	if err != nil {
		return model.Product{}, internalError(err)
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id string, in UpdateProductInput) (model.Product, error) {
	p, err := u.FindOne(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	//SKUを変えるときは他の商品と被らないこと
	if in.SKU != nil && *in.SKU != "" && *in.SKU != p.SKU {
		other, err := u.productRepo.FindBySKU(ctx, *in.SKU)
		if err == nil && other.ID != id {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Product with SKU %s already exists", *in.SKU))
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, internalError(err)
		}
	}

	updated, err := p.Update(model.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		SKU:         in.SKU,
		Category:    in.Category,
		IsActive:    in.IsActive,
	}, u.clock.Now())
	if err != nil {
		return model.Product{}, domainError(err)
	}

	return u.save(ctx, updated)
}

func (u *ProductUsecase) Remove(ctx context.Context, id string) error {
	if _, err := u.FindOne(ctx, id); err != nil {
		return err
	}
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return internalError(err)
	}
	return nil
}

func (u *ProductUsecase) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	ps, err := u.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, internalError(err)
	}
	return ps, nil
}

func (u *ProductUsecase) FindBySKU(ctx context.Context, sku string) (model.Product, error) {
	p, err := u.productRepo.FindBySKU(ctx, sku)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with SKU %s not found", sku))
	}
	if err != nil {
		return model.Product{}, internalError(err)
	}
	return p, nil
}

// 在庫を減らす（足りなければ400）
func (u *ProductUsecase) DecreaseStock(ctx context.Context, id string, qty int64) (model.Product, error) {
	p, err := u.FindOne(ctx, id)
	if err != nil {
		return model.Product{}, err
	}
	next, err := p.DecreaseStock(qty, u.clock.Now())
	if err != nil {
		return model.Product{}, domainError(err)
	}
	return u.save(ctx, next)
}

func (u *ProductUsecase) IncreaseStock(ctx context.Context, id string, qty int64) (model.Product, error) {
	p, err := u.FindOne(ctx, id)
	if err != nil {
		return model.Product{}, err
	}
	next, err := p.IncreaseStock(qty, u.clock.Now())
	if err != nil {
		return model.Product{}, domainError(err)
	}
	return u.save(ctx, next)
}

// 事前チェックをすり抜けたSKU重複は一意制約で弾かれる
func (u *ProductUsecase) save(ctx context.Context, p model.Product) (model.Product, error) {
	saved, err := u.productRepo.Save(ctx, p)
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Product with SKU %s already exists", p.SKU))
	}
	if err != nil {
		return model.Product{}, internalError(err)
	}
	return saved, nil
}
