package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLocation = errors.New("localização de estoque inválida")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrRecordNotFound  = errors.New("registro de estoque não encontrado")
)

// Location identifica um dos dois estoques de um comerciante:
// a loja (frente de caixa) ou o depósito.
type Location string

const (
	LocationShop  Location = "shop"
	LocationStock Location = "stock"
)

// ParseLocation valida e converte uma string em Location
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case LocationShop, LocationStock:
		return Location(s), nil
	}
	return "", ErrInvalidLocation
}

// Record representa o saldo de estoque de um produto em uma localização.
// Único por (produto, localização); a quantidade nunca fica negativa.
type Record struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Location  Location  `json:"location"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord cria um novo registro de estoque
func NewRecord(productID string, location Location, quantity int) *Record {
	return &Record{
		ID:        uuid.New().String(),
		ProductID: productID,
		Location:  location,
		Quantity:  quantity,
		UpdatedAt: time.Now(),
	}
}

// InsufficientStockError indica que uma baixa de estoque excederia o saldo
// disponível. Carrega o nome do produto para a mensagem ao usuário.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %s", e.ProductName)
}

// IsInsufficientStock verifica se o erro é de estoque insuficiente
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
