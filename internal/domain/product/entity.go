package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice    = errors.New("preço do produto deve ser maior que zero")
	ErrProductNotFound = errors.New("produto não encontrado")
)

// Product representa um produto do catálogo de um comerciante.
// O preço aqui é o preço "vivo": pedidos congelam o preço no momento
// da venda (ver order.Item) e nunca leem este campo retroativamente.
type Product struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode"`
	Price      decimal.Decimal `json:"price"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(merchantID, categoryID, name, barcode string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		CategoryID: categoryID,
		Name:       name,
		Barcode:    barcode,
		Price:      price,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name, barcode, categoryID string, price decimal.Decimal) error {
	if name == "" {
		return ErrEmptyName
	}

	if !price.IsPositive() {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Barcode = barcode
	p.CategoryID = categoryID
	p.Price = price
	p.UpdatedAt = time.Now()

	return nil
}

// Deactivate desativa o produto
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}
