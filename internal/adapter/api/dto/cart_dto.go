package dto

import (
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
)

// CartItemRequest representa a adição ou alteração de um item do carrinho
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CartLineResponse representa uma linha do carrinho
type CartLineResponse struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartResponse representa o carrinho retornado pela API
type CartResponse struct {
	ID         string             `json:"id"`
	MerchantID string             `json:"merchant_id"`
	Location   string             `json:"location"`
	Lines      []CartLineResponse `json:"lines"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// ToCartResponse converte um carrinho de domínio para o DTO de resposta
func ToCartResponse(c *cart.Cart) CartResponse {
	response := CartResponse{
		ID:         c.ID,
		MerchantID: c.MerchantID,
		Location:   string(c.Location),
		Lines:      make([]CartLineResponse, 0, len(c.Lines)),
		UpdatedAt:  c.UpdatedAt,
	}

	for _, l := range c.Lines {
		response.Lines = append(response.Lines, CartLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			AddedAt:   l.AddedAt,
		})
	}

	return response
}
