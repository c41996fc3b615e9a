package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/exelo-pos/internal/domain/employee"
	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
	"github.com/hugohenrick/exelo-pos/pkg/jwt"
	"github.com/hugohenrick/exelo-pos/pkg/logger"
)

const tokenDuration = 24 * time.Hour

// AuthController gerencia a autenticação de funcionários
type AuthController struct {
	employeeRepository employee.Repository
	merchantRepository merchant.Repository
	logger             logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(employeeRepository employee.Repository, merchantRepository merchant.Repository, logger logger.Logger) *AuthController {
	return &AuthController{
		employeeRepository: employeeRepository,
		merchantRepository: merchantRepository,
		logger:             logger,
	}
}

// Login autentica um funcionário
// @Summary Autentica um funcionário
// @Description Valida as credenciais e retorna um token JWT; exige comerciante aprovado
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	e, err := c.employeeRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar", err.Error()))
		return
	}

	if !e.IsActive() || !e.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
		return
	}

	m, err := c.merchantRepository.FindByID(ctx, e.MerchantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar", err.Error()))
		return
	}

	// Funcionários só operam depois da aprovação do comerciante
	if !m.IsApproved() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Comerciante não aprovado", "aguarde a aprovação do cadastro"))
		return
	}

	token, err := jwt.GenerateToken(e.ID, e.MerchantID, tokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	e.RegisterLogin()
	if err := c.employeeRepository.Update(ctx, e); err != nil {
		c.logger.Error("erro ao registrar login", "employee_id", e.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(tokenDuration),
		EmployeeID:  e.ID,
		MerchantID:  e.MerchantID,
		Name:        e.Name,
	})
}

// Refresh renova um token JWT
// @Summary Renova um token
// @Description Emite um novo token a partir de um token existente, mesmo que expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest true "Token atual"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	token, err := jwt.RefreshToken(request.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao renovar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Unix(claims.ExpiresAt, 0),
		EmployeeID:  claims.EmployeeID,
		MerchantID:  claims.MerchantID,
	})
}
