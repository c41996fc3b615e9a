package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
)

// InventoryRepository implementa inventory.Repository em memória
type InventoryRepository struct {
	s *Store
}

// NewInventoryRepository cria uma nova instância de InventoryRepository
func NewInventoryRepository(s *Store) inventory.Repository {
	return &InventoryRepository{s: s}
}

// GetQuantity implementa inventory.Repository.GetQuantity
func (r *InventoryRepository) GetQuantity(_ context.Context, productID string, location inventory.Location) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.inventory[invKey(productID, location)]
	if !ok {
		return 0, nil
	}
	return rec.Quantity, nil
}

// Reserve implementa inventory.Repository.Reserve. A verificação e a
// baixa acontecem sob o mesmo lock exclusivo: o saldo nunca fica
// negativo, mesmo com chamadas concorrentes.
func (r *InventoryRepository) Reserve(_ context.Context, productID string, location inventory.Location, qty int, productName string) error {
	if qty < 1 {
		return inventory.ErrInvalidQuantity
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := invKey(productID, location)
	rec, ok := r.s.inventory[key]
	if !ok || rec.Quantity < qty {
		return &inventory.InsufficientStockError{ProductName: productName}
	}

	rec.Quantity -= qty
	rec.UpdatedAt = time.Now()
	r.s.inventory[key] = rec

	return nil
}

// Increase implementa inventory.Repository.Increase
func (r *InventoryRepository) Increase(_ context.Context, productID string, location inventory.Location, qty int) (*inventory.Record, error) {
	if qty < 1 {
		return nil, inventory.ErrInvalidQuantity
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := invKey(productID, location)
	rec, ok := r.s.inventory[key]
	if !ok {
		rec = *inventory.NewRecord(productID, location, qty)
	} else {
		rec.Quantity += qty
		rec.UpdatedAt = time.Now()
	}
	r.s.inventory[key] = rec

	out := rec
	return &out, nil
}

// FindByProduct implementa inventory.Repository.FindByProduct
func (r *InventoryRepository) FindByProduct(_ context.Context, productID string) ([]*inventory.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var records []*inventory.Record
	for _, rec := range r.s.inventory {
		if rec.ProductID == productID {
			out := rec
			records = append(records, &out)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Location < records[j].Location
	})

	return records, nil
}
