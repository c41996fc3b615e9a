package cart

import (
	"testing"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLineMergesQuantities(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)

	require.NoError(t, c.AddLine("p1", 2))
	require.NoError(t, c.AddLine("p1", 3))

	// Linha única por produto; adições repetidas somam
	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Quantity("p1"))
}

func TestAddLineInvalidQuantity(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)

	assert.ErrorIs(t, c.AddLine("p1", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddLine("p1", -1), ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestSetLineQuantityReplaces(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)
	require.NoError(t, c.AddLine("p1", 2))

	require.NoError(t, c.SetLineQuantity("p1", 7))
	assert.Equal(t, 7, c.Quantity("p1"))
}

func TestSetLineQuantityMissingProduct(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)

	assert.ErrorIs(t, c.SetLineQuantity("p1", 2), ErrProductNotInCart)
}

func TestSetLineQuantityInvalid(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)
	require.NoError(t, c.AddLine("p1", 2))

	assert.ErrorIs(t, c.SetLineQuantity("p1", 0), ErrInvalidQuantity)
	assert.Equal(t, 2, c.Quantity("p1"))
}

func TestRemoveLine(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)
	require.NoError(t, c.AddLine("p1", 2))
	require.NoError(t, c.AddLine("p2", 1))

	require.NoError(t, c.RemoveLine("p1"))
	assert.Equal(t, 0, c.Quantity("p1"))
	assert.Equal(t, 1, c.Quantity("p2"))

	assert.ErrorIs(t, c.RemoveLine("p1"), ErrProductNotInCart)
}

func TestIsEmpty(t *testing.T) {
	c := NewCart("merchant-1", inventory.LocationShop)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.AddLine("p1", 1))
	assert.False(t, c.IsEmpty())

	require.NoError(t, c.RemoveLine("p1"))
	assert.True(t, c.IsEmpty())
}
