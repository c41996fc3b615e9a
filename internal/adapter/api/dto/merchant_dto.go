package dto

import (
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
)

// MerchantRequest representa o cadastro de um comerciante junto com o
// primeiro funcionário, que será a identidade de login
type MerchantRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`

	EmployeeName     string `json:"employee_name" binding:"required"`
	EmployeeEmail    string `json:"employee_email" binding:"required,email"`
	EmployeePassword string `json:"employee_password" binding:"required,min=6"`
}

// MerchantResponse representa os dados de comerciante retornados pela API
type MerchantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MerchantListResponse representa uma lista paginada de comerciantes
type MerchantListResponse struct {
	Merchants []MerchantResponse `json:"merchants"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// ToMerchantResponse converte um comerciante de domínio para o DTO de resposta
func ToMerchantResponse(m *merchant.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		Document:  m.Document,
		Email:     m.Email,
		Phone:     m.Phone,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToMerchantListResponse converte uma lista de comerciantes para o DTO paginado
func ToMerchantListResponse(merchants []*merchant.Merchant, page, pageSize int) MerchantListResponse {
	response := MerchantListResponse{
		Merchants: make([]MerchantResponse, 0, len(merchants)),
		Page:      page,
		PageSize:  pageSize,
	}

	for _, m := range merchants {
		response.Merchants = append(response.Merchants, ToMerchantResponse(m))
	}

	return response
}
