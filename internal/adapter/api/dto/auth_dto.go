package dto

import "time"

// LoginRequest representa os dados de login de um funcionário
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest representa a solicitação de renovação de token
type RefreshTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// LoginResponse representa a resposta de autenticação
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	EmployeeID  string    `json:"employee_id"`
	MerchantID  string    `json:"merchant_id"`
	Name        string    `json:"name"`
}
