package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("pedido não encontrado")
	ErrNoItems       = errors.New("pedido deve ter ao menos um item")
)

// Status representa o estado de um pedido
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Item representa um item de pedido com o preço congelado no momento da
// venda. Imutável após a criação; nunca lê o preço vivo do produto.
type Item struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Order representa um registro financeiro imutável de venda. A única
// mutação permitida é a promoção de status pending -> paid.
type Order struct {
	ID             string             `json:"id"`
	MerchantID     string             `json:"merchant_id"`
	Location       inventory.Location `json:"location"`
	CustomerName   string             `json:"customer_name,omitempty"`
	CustomerMobile string             `json:"customer_mobile,omitempty"`
	SignatureRef   string             `json:"signature_ref,omitempty"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	VAT            decimal.Decimal    `json:"vat"`
	Fee            decimal.Decimal    `json:"fee"`
	Total          decimal.Decimal    `json:"total"`
	Status         Status             `json:"status"`
	Items          []Item             `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// NewOrder cria um pedido a partir do detalhamento de preços calculado.
// Os itens congelam nome e preço unitário dos produtos no momento da venda.
func NewOrder(merchantID string, location inventory.Location, status Status, breakdown pricing.Breakdown) (*Order, error) {
	now := time.Now()
	o := &Order{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Location:   location,
		Subtotal:   breakdown.Subtotal,
		VAT:        breakdown.VAT,
		Fee:        breakdown.Fee,
		Total:      breakdown.Total,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return o, nil
}

// AddItem congela um item no pedido
func (o *Order) AddItem(productID, productName string, qty int, unitPrice decimal.Decimal) {
	o.Items = append(o.Items, Item{
		ID:          uuid.New().String(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		CreatedAt:   o.CreatedAt,
	})
}

// IsPaid verifica se o pedido já foi pago
func (o *Order) IsPaid() bool {
	return o.Status == StatusPaid
}

// MarkPaid promove o status pending -> paid. Chamar sobre um pedido já
// pago é um no-op: confirmações de pagamento reenviadas não são erro.
func (o *Order) MarkPaid() bool {
	if o.IsPaid() {
		return false
	}
	o.Status = StatusPaid
	o.UpdatedAt = time.Now()
	return true
}
