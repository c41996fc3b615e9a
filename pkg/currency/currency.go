package currency

import (
	"os"

	"github.com/shopspring/decimal"
)

// DefaultRate é o divisor fixo usado para derivar o valor de exibição na
// moeda secundária (USD) a partir da moeda principal (BRL).
var DefaultRate = decimal.NewFromFloat(5.0)

// Converter deriva valores de exibição nas duas moedas. Conversão e
// arredondamento são preocupações de apresentação: nenhum valor
// armazenado passa por aqui antes de ser gravado.
type Converter struct {
	rate decimal.Decimal
}

// NewConverter cria um conversor com o divisor informado
func NewConverter(rate decimal.Decimal) Converter {
	if !rate.IsPositive() {
		rate = DefaultRate
	}
	return Converter{rate: rate}
}

// FromEnv monta o conversor a partir da variável EXCHANGE_RATE,
// mantendo o padrão quando ausente ou inválida
func FromEnv() Converter {
	if v := os.Getenv("EXCHANGE_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil {
			return NewConverter(rate)
		}
	}
	return NewConverter(DefaultRate)
}

// Display arredonda um valor para o centavo mais próximo (metade para
// cima). Idempotente: arredondar um valor já arredondado não o altera.
func Display(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// ToSecondary converte um valor da moeda principal para a secundária,
// já arredondado para exibição
func (c Converter) ToSecondary(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(c.rate).Round(2)
}
