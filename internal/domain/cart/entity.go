package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
)

var (
	ErrCartNotFound     = errors.New("carrinho não encontrado")
	ErrEmptyCart        = errors.New("carrinho vazio")
	ErrProductNotInCart = errors.New("produto não está no carrinho")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior ou igual a 1")
)

// Line representa um item do carrinho. Única por produto dentro do
// carrinho: adições repetidas somam a quantidade em vez de duplicar linhas.
type Line struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart representa o carrinho de compras de um comerciante em uma
// localização. Único por (comerciante, localização); criado na primeira
// adição e removido no checkout ou na limpeza explícita.
type Cart struct {
	ID         string             `json:"id"`
	MerchantID string             `json:"merchant_id"`
	Location   inventory.Location `json:"location"`
	Lines      []Line             `json:"lines"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewCart cria um novo carrinho vazio
func NewCart(merchantID string, location inventory.Location) *Cart {
	now := time.Now()
	return &Cart{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Location:   location,
		Lines:      []Line{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsEmpty verifica se o carrinho não tem linhas
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// AddLine adiciona quantidade de um produto ao carrinho. Se o produto já
// está presente, soma à quantidade existente.
func (c *Cart) AddLine(productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += qty
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	now := time.Now()
	c.Lines = append(c.Lines, Line{
		ProductID: productID,
		Quantity:  qty,
		AddedAt:   now,
	})
	c.UpdatedAt = now

	return nil
}

// SetLineQuantity substitui a quantidade de uma linha existente
func (c *Cart) SetLineQuantity(productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	return ErrProductNotInCart
}

// RemoveLine remove a linha de um produto do carrinho
func (c *Cart) RemoveLine(productID string) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	return ErrProductNotInCart
}

// Quantity retorna a quantidade de um produto no carrinho; 0 se ausente
func (c *Cart) Quantity(productID string) int {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}
