package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDisplayRoundsHalfUp(t *testing.T) {
	assert.Equal(t, "282.50", Display(decimal.RequireFromString("282.5")).StringFixed(2))
	assert.Equal(t, "10.13", Display(decimal.RequireFromString("10.125")).StringFixed(2))
	assert.Equal(t, "10.12", Display(decimal.RequireFromString("10.124")).StringFixed(2))
}

func TestDisplayIsIdempotent(t *testing.T) {
	once := Display(decimal.RequireFromString("99.995"))
	twice := Display(once)
	assert.True(t, once.Equal(twice))
}

func TestToSecondary(t *testing.T) {
	c := NewConverter(decimal.NewFromInt(5))
	assert.Equal(t, "56.50", c.ToSecondary(decimal.RequireFromString("282.5")).StringFixed(2))
}

func TestNewConverterRejectsNonPositiveRate(t *testing.T) {
	c := NewConverter(decimal.Zero)
	assert.Equal(t, "20.00", c.ToSecondary(decimal.NewFromInt(100)).StringFixed(2))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("EXCHANGE_RATE", "4")
	c := FromEnv()
	assert.Equal(t, "25.00", c.ToSecondary(decimal.NewFromInt(100)).StringFixed(2))
}
