package memory

import (
	"context"
	"sync"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{
		products: make(map[string]model.Product),
	}
}

var _ repo.ProductRepository = (*ProductMemoryRepository)(nil)

func (r *ProductMemoryRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[p.ID] = p
	return p, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *ProductMemoryRepository) FindBySKU(ctx context.Context, sku string) (model.Product, error) {
	found := r.filter(func(p model.Product) bool { return p.SKU == sku })
	if len(found) == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return found[0], nil
}

func (r *ProductMemoryRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.filter(func(model.Product) bool { return true }), nil
}

func (r *ProductMemoryRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.filter(func(p model.Product) bool { return p.Category == category }), nil
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

func (r *ProductMemoryRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	_, err := r.FindBySKU(ctx, sku)
	if err == repo.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProductMemoryRepository) filter(match func(model.Product) bool) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0)
	for _, p := range r.products {
		if match(p) {
			out = append(out, p)
		}
	}
	sortByCreated(out, func(p model.Product) (time.Time, string) { return p.CreatedAt, p.ID })
	return out
}
