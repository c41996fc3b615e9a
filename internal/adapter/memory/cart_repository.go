package memory

import (
	"context"

	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
)

// CartRepository implementa cart.Repository em memória. O lock único do
// store serializa o padrão ler-somar-gravar das mutações de carrinho.
type CartRepository struct {
	s *Store
}

// NewCartRepository cria uma nova instância de CartRepository
func NewCartRepository(s *Store) cart.Repository {
	return &CartRepository{s: s}
}

// FindByMerchant implementa cart.Repository.FindByMerchant
func (r *CartRepository) FindByMerchant(_ context.Context, merchantID string, location inventory.Location) (*cart.Cart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.carts[cartKey(merchantID, location)]
	if !ok {
		return nil, cart.ErrCartNotFound
	}

	out := cloneCart(c)
	return &out, nil
}

// Save implementa cart.Repository.Save
func (r *CartRepository) Save(_ context.Context, c *cart.Cart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.carts[cartKey(c.MerchantID, c.Location)] = cloneCart(*c)
	return nil
}

// Mutate implementa cart.Repository.Mutate. O lock de escrita é mantido
// do carregamento à regravação, então o ler-somar-gravar de mutações
// concorrentes do mesmo carrinho nunca perde somas.
func (r *CartRepository) Mutate(_ context.Context, merchantID string, location inventory.Location, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := cartKey(merchantID, location)

	var cur cart.Cart
	if existing, ok := r.s.carts[key]; ok {
		cur = cloneCart(existing)
	} else {
		cur = *cart.NewCart(merchantID, location)
	}

	if err := fn(&cur); err != nil {
		return nil, err
	}

	// Carrinho sem linhas não fica registrado
	if cur.IsEmpty() {
		delete(r.s.carts, key)
	} else {
		r.s.carts[key] = cloneCart(cur)
	}

	return &cur, nil
}

// Delete implementa cart.Repository.Delete
func (r *CartRepository) Delete(_ context.Context, merchantID string, location inventory.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.carts, cartKey(merchantID, location))
	return nil
}
