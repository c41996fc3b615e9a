package dto

import (
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa os dados para criação/atualização de produto
type ProductRequest struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name" binding:"required"`
	Barcode    string          `json:"barcode"`
	Price      decimal.Decimal `json:"price" binding:"required"`
}

// ProductResponse representa os dados de produto retornados pela API
type ProductResponse struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	CategoryID string          `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse representa uma lista paginada de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// ToProductResponse converte um produto de domínio para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		MerchantID: p.MerchantID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Barcode:    p.Barcode,
		Price:      p.Price,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o DTO paginado
func ToProductListResponse(products []*product.Product, totalCount, page, pageSize int) ProductListResponse {
	response := ProductListResponse{
		Products:   make([]ProductResponse, 0, len(products)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}

	for _, p := range products {
		response.Products = append(response.Products, ToProductResponse(p))
	}

	return response
}
