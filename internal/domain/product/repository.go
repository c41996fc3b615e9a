package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto pelo código de barras dentro de um comerciante
	FindByBarcode(ctx context.Context, merchantID, barcode string) (*Product, error)

	// List lista os produtos de um comerciante com paginação
	List(ctx context.Context, merchantID string, limit, offset int) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// CountByMerchant conta quantos produtos existem para um comerciante
	CountByMerchant(ctx context.Context, merchantID string) (int, error)
}
