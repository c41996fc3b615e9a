package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/domain/pricing"
	"github.com/hugohenrick/exelo-pos/internal/service/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommitsOnSuccess(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	err := uow.Run(ctx, func(ctx context.Context, r checkout.Repositories) error {
		_, err := r.Inventory.Increase(ctx, "p1", inventory.LocationShop, 5)
		return err
	})
	require.NoError(t, err)

	qty, err := uow.Repositories().Inventory.GetQuantity(ctx, "p1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

// TestRunRollsBackOnError verifica que uma falha no meio da unidade de
// trabalho desfaz todas as mutações anteriores, inclusive as de outros
// repositórios.
func TestRunRollsBackOnError(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	_, err := uow.Repositories().Inventory.Increase(ctx, "p1", inventory.LocationShop, 10)
	require.NoError(t, err)

	boom := errors.New("falha no meio da transação")
	err = uow.Run(ctx, func(ctx context.Context, r checkout.Repositories) error {
		if err := r.Inventory.Reserve(ctx, "p1", inventory.LocationShop, 4, "Café"); err != nil {
			return err
		}

		o, err := order.NewOrder("merchant-1", inventory.LocationShop, order.StatusPaid, pricing.Breakdown{})
		if err != nil {
			return err
		}
		if err := r.Orders.Create(ctx, o); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	// Estoque restaurado
	qty, err := uow.Repositories().Inventory.GetQuantity(ctx, "p1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	// Pedido não persistido
	orders, err := uow.Repositories().Orders.ListByMerchant(ctx, "merchant-1", "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
