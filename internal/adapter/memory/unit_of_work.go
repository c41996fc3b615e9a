package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/exelo-pos/internal/service/checkout"
)

// UnitOfWork implementa checkout.UnitOfWork sobre o store em memória.
// Unidades de trabalho são serializadas entre si por um mutex próprio;
// o rollback restaura um snapshot profundo tirado antes da execução.
type UnitOfWork struct {
	s    *Store
	txMu sync.Mutex
}

// NewUnitOfWork cria uma nova instância de UnitOfWork
func NewUnitOfWork(s *Store) *UnitOfWork {
	return &UnitOfWork{s: s}
}

// Repositories implementa checkout.UnitOfWork.Repositories
func (u *UnitOfWork) Repositories() checkout.Repositories {
	return checkout.Repositories{
		Products:  NewProductRepository(u.s),
		Inventory: NewInventoryRepository(u.s),
		Carts:     NewCartRepository(u.s),
		Orders:    NewOrderRepository(u.s),
	}
}

// Run implementa checkout.UnitOfWork.Run
func (u *UnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, r checkout.Repositories) error) error {
	u.txMu.Lock()
	defer u.txMu.Unlock()

	snap := u.s.takeSnapshot()

	if err := fn(ctx, u.Repositories()); err != nil {
		u.s.restore(snap)
		return err
	}

	return nil
}
