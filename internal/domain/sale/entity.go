package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount        = errors.New("valor da venda deve ser maior que zero")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrSaleNotFound         = errors.New("venda não encontrada")
	ErrPaymentNotFound      = errors.New("pagamento não encontrado")
)

// PaymentMethod representa a forma de pagamento de uma venda avulsa
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodCard PaymentMethod = "card"
)

// ParsePaymentMethod valida e converte uma string em PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCard:
		return PaymentMethod(s), nil
	}
	return "", ErrInvalidPaymentMethod
}

// Sale representa uma venda avulsa de balcão, independente do fluxo de
// carrinho/pedido. Vendas em dinheiro nascem concluídas; vendas no cartão
// ficam incompletas até a confirmação do pagamento pelo gateway.
type Sale struct {
	ID           string          `json:"id"`
	MerchantID   string          `json:"merchant_id"`
	Amount       decimal.Decimal `json:"amount"`
	Method       PaymentMethod   `json:"payment_method"`
	IsCompleted  bool            `json:"is_completed"`
	IsSuccessful bool            `json:"is_successful"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewSale cria uma nova venda avulsa
func NewSale(merchantID string, amount decimal.Decimal, method PaymentMethod) (*Sale, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Sale{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Amount:     amount,
		Method:     method,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Dinheiro liquida na hora; não há registro de pagamento associado
	if method == MethodCash {
		s.IsCompleted = true
	}

	return s, nil
}

// Complete marca a venda como concluída com sucesso após a confirmação
// do pagamento
func (s *Sale) Complete() {
	s.IsCompleted = true
	s.IsSuccessful = true
	s.UpdatedAt = time.Now()
}

// Payment representa o registro de pagamento de uma venda no cartão.
// Um por venda; mutado uma única vez pela confirmação do gateway.
type Payment struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	IsSuccessful  bool            `json:"is_successful"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewPayment cria o registro de pagamento pendente de uma venda no cartão
func NewPayment(saleID string, amount decimal.Decimal, method PaymentMethod, transactionID string) *Payment {
	now := time.Now()
	return &Payment{
		ID:            uuid.New().String(),
		SaleID:        saleID,
		Amount:        amount,
		Method:        method,
		TransactionID: transactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
