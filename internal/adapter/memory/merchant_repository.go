package memory

import (
	"context"
	"sort"

	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
)

// MerchantRepository implementa merchant.Repository em memória
type MerchantRepository struct {
	s *Store
}

// NewMerchantRepository cria uma nova instância de MerchantRepository
func NewMerchantRepository(s *Store) merchant.Repository {
	return &MerchantRepository{s: s}
}

// Create implementa merchant.Repository.Create
func (r *MerchantRepository) Create(_ context.Context, m *merchant.Merchant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.merchants {
		if existing.Document == m.Document {
			return merchant.ErrDuplicateMerchant
		}
	}

	r.s.merchants[m.ID] = *m
	return nil
}

// FindByID implementa merchant.Repository.FindByID
func (r *MerchantRepository) FindByID(_ context.Context, id string) (*merchant.Merchant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.merchants[id]
	if !ok {
		return nil, merchant.ErrMerchantNotFound
	}

	out := m
	return &out, nil
}

// FindByDocument implementa merchant.Repository.FindByDocument
func (r *MerchantRepository) FindByDocument(_ context.Context, document string) (*merchant.Merchant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.merchants {
		if m.Document == document {
			out := m
			return &out, nil
		}
	}

	return nil, merchant.ErrMerchantNotFound
}

// List implementa merchant.Repository.List
func (r *MerchantRepository) List(_ context.Context, limit, offset int) ([]*merchant.Merchant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var merchants []*merchant.Merchant
	for _, m := range r.s.merchants {
		out := m
		merchants = append(merchants, &out)
	}

	sort.Slice(merchants, func(i, j int) bool {
		return merchants[i].CreatedAt.Before(merchants[j].CreatedAt)
	})

	return paginate(merchants, limit, offset), nil
}

// Update implementa merchant.Repository.Update
func (r *MerchantRepository) Update(_ context.Context, m *merchant.Merchant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.merchants[m.ID]; !ok {
		return merchant.ErrMerchantNotFound
	}

	r.s.merchants[m.ID] = *m
	return nil
}

// UpdateStatus implementa merchant.Repository.UpdateStatus
func (r *MerchantRepository) UpdateStatus(_ context.Context, id string, status merchant.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.merchants[id]
	if !ok {
		return merchant.ErrMerchantNotFound
	}

	m.Status = status
	r.s.merchants[id] = m
	return nil
}
