package employee

import (
	"context"
)

// Repository define a interface para operações de repositório de funcionários
type Repository interface {
	// Create cria um novo funcionário
	Create(ctx context.Context, e *Employee) error

	// FindByID busca um funcionário pelo ID
	FindByID(ctx context.Context, id string) (*Employee, error)

	// FindByEmail busca um funcionário pelo email
	FindByEmail(ctx context.Context, email string) (*Employee, error)

	// ListByMerchant lista os funcionários de um comerciante
	ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]*Employee, error)

	// Update atualiza os dados de um funcionário existente
	Update(ctx context.Context, e *Employee) error

	// Delete remove um funcionário
	Delete(ctx context.Context, id string) error
}
