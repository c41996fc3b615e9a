package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(price float64, qty int) Line {
	return Line{UnitPrice: decimal.NewFromFloat(price), Quantity: qty}
}

func TestComputeBreakdown(t *testing.T) {
	// 2x produto A (100) + 1x produto B (50)
	b := DefaultPolicy().Compute([]Line{line(100, 2), line(50, 1)})

	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = %s", b.Subtotal)
	assert.True(t, b.VAT.Equal(decimal.NewFromInt(25)), "vat = %s", b.VAT)
	assert.True(t, b.Fee.Equal(decimal.NewFromFloat(7.5)), "fee = %s", b.Fee)
	assert.True(t, b.Total.Equal(decimal.NewFromFloat(282.5)), "total = %s", b.Total)
}

func TestComputeIsDeterministic(t *testing.T) {
	lines := []Line{line(19.99, 3), line(0.05, 7), line(1234.56, 1)}
	policy := DefaultPolicy()

	first := policy.Compute(lines)
	for i := 0; i < 10; i++ {
		again := policy.Compute(lines)
		require.True(t, first.Subtotal.Equal(again.Subtotal))
		require.True(t, first.VAT.Equal(again.VAT))
		require.True(t, first.Fee.Equal(again.Fee))
		require.True(t, first.Total.Equal(again.Total))
	}
}

func TestFeeComputedOnSubtotalNotTotal(t *testing.T) {
	b := DefaultPolicy().Compute([]Line{line(1000, 1)})

	// taxa sobre o subtotal (30), não sobre subtotal+VAT (33)
	assert.True(t, b.Fee.Equal(decimal.NewFromInt(30)), "fee = %s", b.Fee)
	assert.True(t, b.VAT.Equal(decimal.NewFromInt(100)))
	assert.True(t, b.Total.Equal(decimal.NewFromInt(1130)))
}

func TestComputeEmptyLines(t *testing.T) {
	b := DefaultPolicy().Compute(nil)

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Total.IsZero())
}

func TestPolicyFromEnv(t *testing.T) {
	t.Setenv("VAT_RATE", "0.07")
	t.Setenv("PLATFORM_FEE_RATE", "0.02")

	p := PolicyFromEnv()
	assert.True(t, p.VATRate.Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, p.FeeRate.Equal(decimal.NewFromFloat(0.02)))

	t.Setenv("VAT_RATE", "abc")
	p = PolicyFromEnv()
	assert.True(t, p.VATRate.Equal(DefaultVATRate), "valor inválido mantém o padrão")
}

func TestComputeKeepsPrecisionAcrossLines(t *testing.T) {
	// três linhas de 0.333: o subtotal deve ser exatamente 0.999,
	// sem arredondamento intermediário por linha
	price := decimal.RequireFromString("0.333")
	b := DefaultPolicy().Compute([]Line{
		{UnitPrice: price, Quantity: 1},
		{UnitPrice: price, Quantity: 1},
		{UnitPrice: price, Quantity: 1},
	})

	assert.True(t, b.Subtotal.Equal(decimal.RequireFromString("0.999")), "subtotal = %s", b.Subtotal)
}
