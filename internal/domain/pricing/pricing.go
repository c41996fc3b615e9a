package pricing

import (
	"os"

	"github.com/shopspring/decimal"
)

// Taxas padrão da plataforma. VAT e taxa Exelo incidem ambas sobre o
// subtotal, nunca sobre subtotal+VAT.
var (
	DefaultVATRate = decimal.NewFromFloat(0.10)
	DefaultFeeRate = decimal.NewFromFloat(0.03)
)

// Line representa um par (preço unitário, quantidade) a precificar
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Breakdown é o detalhamento de valores de uma venda. Os valores são
// mantidos sem arredondamento; o arredondamento para a unidade monetária
// acontece apenas na borda de apresentação (pkg/currency).
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Fee      decimal.Decimal `json:"fee"`
	Total    decimal.Decimal `json:"total"`
}

// Policy carrega as taxas configuradas de VAT e de plataforma
type Policy struct {
	VATRate decimal.Decimal
	FeeRate decimal.Decimal
}

// DefaultPolicy retorna a política com as taxas padrão
func DefaultPolicy() Policy {
	return Policy{
		VATRate: DefaultVATRate,
		FeeRate: DefaultFeeRate,
	}
}

// PolicyFromEnv monta a política a partir das variáveis de ambiente
// VAT_RATE e PLATFORM_FEE_RATE, mantendo os padrões quando ausentes ou
// inválidas.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()

	if v := os.Getenv("VAT_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil && !rate.IsNegative() {
			p.VATRate = rate
		}
	}

	if v := os.Getenv("PLATFORM_FEE_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil && !rate.IsNegative() {
			p.FeeRate = rate
		}
	}

	return p
}

// Compute calcula o detalhamento de valores das linhas. Função pura:
// as mesmas linhas produzem sempre o mesmo resultado.
func (p Policy) Compute(lines []Line) Breakdown {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	vat := subtotal.Mul(p.VATRate)
	fee := subtotal.Mul(p.FeeRate)

	return Breakdown{
		Subtotal: subtotal,
		VAT:      vat,
		Fee:      fee,
		Total:    subtotal.Add(vat).Add(fee),
	}
}
