package merchant

import (
	"context"
)

// Repository define a interface para operações de repositório de comerciantes
type Repository interface {
	// Create cria um novo comerciante
	Create(ctx context.Context, m *Merchant) error

	// FindByID busca um comerciante pelo ID
	FindByID(ctx context.Context, id string) (*Merchant, error)

	// FindByDocument busca um comerciante pelo documento
	FindByDocument(ctx context.Context, document string) (*Merchant, error)

	// List lista os comerciantes com paginação
	List(ctx context.Context, limit, offset int) ([]*Merchant, error)

	// Update atualiza os dados de um comerciante existente
	Update(ctx context.Context, m *Merchant) error

	// UpdateStatus atualiza o status de um comerciante
	UpdateStatus(ctx context.Context, id string, status Status) error
}
