package dto

import (
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/domain/pricing"
	"github.com/hugohenrick/exelo-pos/pkg/currency"
	"github.com/shopspring/decimal"
)

// CheckoutRequest representa o fechamento de carrinho com pagamento imediato
type CheckoutRequest struct {
	Location string `json:"location" binding:"required"`
}

// PendingCheckoutRequest representa o fechamento de carrinho a pagar,
// com a identidade opcional do cliente e a assinatura em base64
type PendingCheckoutRequest struct {
	Location       string `json:"location" binding:"required"`
	CustomerName   string `json:"customer_name"`
	CustomerMobile string `json:"customer_mobile"`
	Signature      string `json:"signature"`
}

// AmountResponse representa um valor monetário nas duas moedas de
// exibição, já arredondado ao centavo
type AmountResponse struct {
	BRL decimal.Decimal `json:"brl"`
	USD decimal.Decimal `json:"usd"`
}

// BreakdownResponse representa o detalhamento de valores de um carrinho
// ou pedido
type BreakdownResponse struct {
	Subtotal AmountResponse `json:"subtotal"`
	VAT      AmountResponse `json:"vat"`
	Fee      AmountResponse `json:"fee"`
	Total    AmountResponse `json:"total"`
}

// OrderItemResponse representa um item congelado de pedido
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderResponse representa um pedido retornado pela API
type OrderResponse struct {
	ID             string              `json:"id"`
	MerchantID     string              `json:"merchant_id"`
	Location       string              `json:"location"`
	CustomerName   string              `json:"customer_name,omitempty"`
	CustomerMobile string              `json:"customer_mobile,omitempty"`
	SignatureRef   string              `json:"signature_ref,omitempty"`
	Status         string              `json:"status"`
	Breakdown      BreakdownResponse   `json:"breakdown"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderListResponse representa uma lista paginada de pedidos
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// ToAmountResponse converte um valor armazenado nos dois valores de exibição
func ToAmountResponse(amount decimal.Decimal, conv currency.Converter) AmountResponse {
	return AmountResponse{
		BRL: currency.Display(amount),
		USD: conv.ToSecondary(amount),
	}
}

// ToBreakdownResponse converte um detalhamento de preços para exibição
func ToBreakdownResponse(b pricing.Breakdown, conv currency.Converter) BreakdownResponse {
	return BreakdownResponse{
		Subtotal: ToAmountResponse(b.Subtotal, conv),
		VAT:      ToAmountResponse(b.VAT, conv),
		Fee:      ToAmountResponse(b.Fee, conv),
		Total:    ToAmountResponse(b.Total, conv),
	}
}

// ToOrderResponse converte um pedido de domínio para o DTO de resposta
func ToOrderResponse(o *order.Order, conv currency.Converter) OrderResponse {
	response := OrderResponse{
		ID:             o.ID,
		MerchantID:     o.MerchantID,
		Location:       string(o.Location),
		CustomerName:   o.CustomerName,
		CustomerMobile: o.CustomerMobile,
		SignatureRef:   o.SignatureRef,
		Status:         string(o.Status),
		Breakdown: ToBreakdownResponse(pricing.Breakdown{
			Subtotal: o.Subtotal,
			VAT:      o.VAT,
			Fee:      o.Fee,
			Total:    o.Total,
		}, conv),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	for _, it := range o.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	return response
}

// ToOrderListResponse converte uma lista de pedidos para o DTO paginado
func ToOrderListResponse(orders []*order.Order, conv currency.Converter, totalCount, page, pageSize int) OrderListResponse {
	response := OrderListResponse{
		Orders:     make([]OrderResponse, 0, len(orders)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}

	for _, o := range orders {
		response.Orders = append(response.Orders, ToOrderResponse(o, conv))
	}

	return response
}
