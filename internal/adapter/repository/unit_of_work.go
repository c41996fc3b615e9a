package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/service/checkout"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UnitOfWork implementa checkout.UnitOfWork sobre um pool pgx. Cada Run
// abre uma transação e entrega repositórios ligados a ela; commit só
// acontece se fn retornar nil.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork cria uma nova instância de UnitOfWork
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

func buildRepositories(db DBTX) checkout.Repositories {
	return checkout.Repositories{
		Products:  NewProductRepository(db),
		Inventory: NewInventoryRepository(db),
		Carts:     NewCartRepository(db),
		Orders:    NewOrderRepository(db),
	}
}

// Repositories retorna repositórios ligados ao pool, fora de transação
func (u *UnitOfWork) Repositories() checkout.Repositories {
	return buildRepositories(u.pool)
}

// Run executa fn dentro de uma transação
func (u *UnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, r checkout.Repositories) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, buildRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}
