package dto

import (
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
)

// StockInRequest representa uma entrada de estoque
type StockInRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// InventoryRecordResponse representa o saldo de estoque de um produto em
// uma localização
type InventoryRecordResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Location  string    `json:"location"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToInventoryRecordResponse converte um registro de estoque para o DTO de resposta
func ToInventoryRecordResponse(r *inventory.Record) InventoryRecordResponse {
	return InventoryRecordResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Location:  string(r.Location),
		Quantity:  r.Quantity,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToInventoryRecordListResponse converte uma lista de registros de estoque
func ToInventoryRecordListResponse(records []*inventory.Record) []InventoryRecordResponse {
	out := make([]InventoryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToInventoryRecordResponse(r))
	}
	return out
}
