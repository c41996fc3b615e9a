package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuantityAbsentRecord(t *testing.T) {
	repo := NewInventoryRepository(NewStore())

	qty, err := repo.GetQuantity(context.Background(), "p1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestIncreaseCreatesAndAccumulates(t *testing.T) {
	repo := NewInventoryRepository(NewStore())
	ctx := context.Background()

	rec, err := repo.Increase(ctx, "p1", inventory.LocationShop, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Quantity)

	rec, err = repo.Increase(ctx, "p1", inventory.LocationShop, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, rec.Quantity)
}

func TestReserveInsufficient(t *testing.T) {
	repo := NewInventoryRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Increase(ctx, "p1", inventory.LocationShop, 2)
	require.NoError(t, err)

	err = repo.Reserve(ctx, "p1", inventory.LocationShop, 3, "Café")
	require.Error(t, err)
	assert.True(t, inventory.IsInsufficientStock(err))
	assert.Contains(t, err.Error(), "Café")

	// Falha não decrementa nada
	qty, err := repo.GetQuantity(ctx, "p1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
}

func TestReserveLocationsIndependent(t *testing.T) {
	repo := NewInventoryRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Increase(ctx, "p1", inventory.LocationShop, 5)
	require.NoError(t, err)
	_, err = repo.Increase(ctx, "p1", inventory.LocationStock, 7)
	require.NoError(t, err)

	require.NoError(t, repo.Reserve(ctx, "p1", inventory.LocationShop, 5, "Café"))

	qty, err := repo.GetQuantity(ctx, "p1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	qty, err = repo.GetQuantity(ctx, "p1", inventory.LocationStock)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

// TestReserveConcurrent dispara reservas concorrentes acima do saldo e
// verifica que o total reservado nunca excede o disponível.
func TestReserveConcurrent(t *testing.T) {
	repo := NewInventoryRepository(NewStore())
	ctx := context.Background()

	const available = 50
	const workers = 100

	_, err := repo.Increase(ctx, "p1", inventory.LocationShop, available)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Reserve(ctx, "p1", inventory.LocationShop, 1, "Café"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, available, succeeded)

	qty, err := repo.GetQuantity(ctx, "p1", inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}
