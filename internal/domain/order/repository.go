package order

import (
	"context"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
)

// Repository define a interface para persistência de pedidos
type Repository interface {
	// Create grava o pedido e seus itens juntos
	Create(ctx context.Context, o *Order) error

	// FindByID busca um pedido com seus itens.
	// Retorna ErrOrderNotFound quando não existe.
	FindByID(ctx context.Context, id string) (*Order, error)

	// UpdateStatus grava o novo status de um pedido
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListByMerchant lista os pedidos de um comerciante com paginação
	ListByMerchant(ctx context.Context, merchantID string, location inventory.Location, limit, offset int) ([]*Order, error)

	// CountByMerchant conta os pedidos de um comerciante
	CountByMerchant(ctx context.Context, merchantID string) (int, error)
}
