package memory

import (
	"context"
	"sort"

	"github.com/hugohenrick/exelo-pos/internal/domain/product"
)

// ProductRepository implementa product.Repository em memória
type ProductRepository struct {
	s *Store
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(s *Store) product.Repository {
	return &ProductRepository{s: s}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.products[p.ID] = *p
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}

	out := p
	return &out, nil
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(_ context.Context, merchantID, barcode string) (*product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.products {
		if p.MerchantID == merchantID && p.Barcode == barcode {
			out := p
			return &out, nil
		}
	}

	return nil, product.ErrProductNotFound
}

// List implementa product.Repository.List
func (r *ProductRepository) List(_ context.Context, merchantID string, limit, offset int) ([]*product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var products []*product.Product
	for _, p := range r.s.products {
		if p.MerchantID == merchantID {
			out := p
			products = append(products, &out)
		}
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return paginate(products, limit, offset), nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ID]; !ok {
		return product.ErrProductNotFound
	}

	r.s.products[p.ID] = *p
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return product.ErrProductNotFound
	}

	delete(r.s.products, id)
	return nil
}

// CountByMerchant implementa product.Repository.CountByMerchant
func (r *ProductRepository) CountByMerchant(_ context.Context, merchantID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, p := range r.s.products {
		if p.MerchantID == merchantID {
			count++
		}
	}

	return count, nil
}

// paginate aplica limit/offset sobre uma fatia já ordenada
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
