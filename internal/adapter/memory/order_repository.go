package memory

import (
	"context"
	"sort"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
)

// OrderRepository implementa order.Repository em memória
type OrderRepository struct {
	s *Store
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(s *Store) order.Repository {
	return &OrderRepository{s: s}
}

// Create implementa order.Repository.Create
func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.orders[o.ID] = cloneOrder(*o)
	return nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}

	out := cloneOrder(o)
	return &out, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status order.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}

	o.Status = status
	r.s.orders[id] = o
	return nil
}

// ListByMerchant implementa order.Repository.ListByMerchant
func (r *OrderRepository) ListByMerchant(_ context.Context, merchantID string, location inventory.Location, limit, offset int) ([]*order.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var orders []*order.Order
	for _, o := range r.s.orders {
		if o.MerchantID == merchantID && (location == "" || o.Location == location) {
			out := cloneOrder(o)
			orders = append(orders, &out)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return paginate(orders, limit, offset), nil
}

// CountByMerchant implementa order.Repository.CountByMerchant
func (r *OrderRepository) CountByMerchant(_ context.Context, merchantID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, o := range r.s.orders {
		if o.MerchantID == merchantID {
			count++
		}
	}

	return count, nil
}
