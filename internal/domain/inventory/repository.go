package inventory

import (
	"context"
)

// Repository define a interface para o livro de estoque.
//
// Implementações devem serializar a verificação e a baixa de saldo por
// (produto, localização): duas chamadas concorrentes de Reserve nunca podem
// passar juntas pela verificação e levar o saldo abaixo de zero.
type Repository interface {
	// GetQuantity retorna o saldo atual; 0 quando não há registro
	GetQuantity(ctx context.Context, productID string, location Location) (int, error)

	// Reserve verifica e decrementa o saldo de forma atômica.
	// Retorna *InsufficientStockError quando o saldo é menor que qty;
	// nesse caso nada é decrementado.
	Reserve(ctx context.Context, productID string, location Location, qty int, productName string) error

	// Increase incrementa o saldo, criando o registro se não existir
	Increase(ctx context.Context, productID string, location Location, qty int) (*Record, error)

	// FindByProduct lista os registros de estoque de um produto
	FindByProduct(ctx context.Context, productID string) ([]*Record, error)
}
