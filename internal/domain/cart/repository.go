package cart

import (
	"context"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
)

// Repository define a interface para persistência de carrinhos.
//
// Implementações devem serializar mutações do mesmo carrinho: o padrão
// ler-somar-gravar de AddLine não pode perder atualizações concorrentes.
type Repository interface {
	// FindByMerchant busca o carrinho de um comerciante em uma localização.
	// Retorna ErrCartNotFound quando não existe.
	FindByMerchant(ctx context.Context, merchantID string, location inventory.Location) (*Cart, error)

	// Save grava o carrinho e suas linhas (insere ou substitui)
	Save(ctx context.Context, c *Cart) error

	// Mutate carrega (ou cria) o carrinho, aplica fn e regrava, tudo sob
	// serialização por (comerciante, localização). Se fn falhar, nada é
	// gravado e o erro de fn é retornado. Um carrinho que termina sem
	// linhas não fica registrado.
	Mutate(ctx context.Context, merchantID string, location inventory.Location, fn func(c *Cart) error) (*Cart, error)

	// Delete remove o carrinho e todas as suas linhas
	Delete(ctx context.Context, merchantID string, location inventory.Location) error
}
