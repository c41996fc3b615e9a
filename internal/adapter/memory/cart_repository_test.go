package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMutateConcurrentAdds dispara adições concorrentes no mesmo
// carrinho e verifica que nenhuma soma do ler-somar-gravar se perde.
func TestMutateConcurrentAdds(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	const workers = 16
	const addsPerWorker = 200

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < addsPerWorker; j++ {
				_, err := repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
					return c.AddLine("p1", 1)
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	c, err := repo.FindByMerchant(ctx, "merchant-1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, workers*addsPerWorker, c.Quantity("p1"))
}

func TestMutateCreatesCartOnFirstAdd(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	c, err := repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
		return c.AddLine("p1", 2)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Quantity("p1"))

	saved, err := repo.FindByMerchant(ctx, "merchant-1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Quantity("p1"))
}

// TestMutateDropsEmptyCart verifica que o carrinho é descartado quando
// a última linha sai.
func TestMutateDropsEmptyCart(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
		return c.AddLine("p1", 1)
	})
	require.NoError(t, err)

	_, err = repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
		return c.RemoveLine("p1")
	})
	require.NoError(t, err)

	_, err = repo.FindByMerchant(ctx, "merchant-1", inventory.LocationShop)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}

// TestMutateAbortsOnError verifica que uma falha de fn não grava nada,
// nem mesmo um carrinho recém-criado.
func TestMutateAbortsOnError(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	boom := errors.New("falha na mutação")
	_, err := repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
		require.NoError(t, c.AddLine("p1", 1))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.FindByMerchant(ctx, "merchant-1", inventory.LocationShop)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)

	// Carrinho existente permanece intacto após uma falha
	_, err = repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
		return c.AddLine("p1", 3)
	})
	require.NoError(t, err)

	_, err = repo.Mutate(ctx, "merchant-1", inventory.LocationShop, func(c *cart.Cart) error {
		require.NoError(t, c.SetLineQuantity("p1", 9))
		return boom
	})
	require.ErrorIs(t, err, boom)

	saved, err := repo.FindByMerchant(ctx, "merchant-1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Quantity("p1"))
}
