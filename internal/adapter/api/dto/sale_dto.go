package dto

import (
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
	"github.com/hugohenrick/exelo-pos/pkg/currency"
	"github.com/shopspring/decimal"
)

// SaleRequest representa o registro de uma venda avulsa de balcão
type SaleRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"payment_method" binding:"required"`
}

// PaymentConfirmationRequest representa a confirmação assíncrona do
// gateway de pagamento
type PaymentConfirmationRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Success       *bool  `json:"success" binding:"required"`
}

// SaleResponse representa uma venda avulsa retornada pela API
type SaleResponse struct {
	ID           string         `json:"id"`
	MerchantID   string         `json:"merchant_id"`
	Amount       AmountResponse `json:"amount"`
	Method       string         `json:"payment_method"`
	IsCompleted  bool           `json:"is_completed"`
	IsSuccessful bool           `json:"is_successful"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// PaymentResponse representa o registro de pagamento de uma venda no cartão
type PaymentResponse struct {
	ID            string         `json:"id"`
	SaleID        string         `json:"sale_id"`
	Amount        AmountResponse `json:"amount"`
	TransactionID string         `json:"transaction_id"`
	IsSuccessful  bool           `json:"is_successful"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ToSaleResponse converte uma venda de domínio para o DTO de resposta
func ToSaleResponse(s *sale.Sale, conv currency.Converter) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		MerchantID:   s.MerchantID,
		Amount:       ToAmountResponse(s.Amount, conv),
		Method:       string(s.Method),
		IsCompleted:  s.IsCompleted,
		IsSuccessful: s.IsSuccessful,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToPaymentResponse converte um pagamento de domínio para o DTO de resposta
func ToPaymentResponse(p *sale.Payment, conv currency.Converter) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		SaleID:        p.SaleID,
		Amount:        ToAmountResponse(p.Amount, conv),
		TransactionID: p.TransactionID,
		IsSuccessful:  p.IsSuccessful,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas para exibição
func ToSaleListResponse(sales []*sale.Sale, conv currency.Converter) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s, conv))
	}
	return out
}
