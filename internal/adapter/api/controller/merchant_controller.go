package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/exelo-pos/internal/domain/employee"
	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
)

// MerchantController gerencia o cadastro e a aprovação de comerciantes
type MerchantController struct {
	merchantRepository merchant.Repository
	employeeRepository employee.Repository
}

// NewMerchantController cria uma nova instância de MerchantController
func NewMerchantController(merchantRepository merchant.Repository, employeeRepository employee.Repository) *MerchantController {
	return &MerchantController{
		merchantRepository: merchantRepository,
		employeeRepository: employeeRepository,
	}
}

// Register cadastra um novo comerciante
// @Summary Cadastra um comerciante
// @Description Cria o comerciante pendente de aprovação junto com o primeiro funcionário
// @Tags merchants
// @Accept json
// @Produce json
// @Param merchant body dto.MerchantRequest true "Dados do comerciante"
// @Success 201 {object} dto.MerchantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /merchants [post]
func (c *MerchantController) Register(ctx *gin.Context) {
	var request dto.MerchantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	m, err := merchant.NewMerchant(request.Name, request.Document, request.Email, request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Comerciante inválido", err.Error()))
		return
	}

	if err := c.merchantRepository.Create(ctx, m); err != nil {
		if errors.Is(err, merchant.ErrDuplicateMerchant) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Comerciante já existe", "um comerciante com este documento já está cadastrado"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao cadastrar comerciante", err.Error()))
		return
	}

	e, err := employee.NewEmployee(m.ID, request.EmployeeName, request.EmployeeEmail, request.EmployeePassword)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Funcionário inválido", err.Error()))
		return
	}

	if err := c.employeeRepository.Create(ctx, e); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao cadastrar funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMerchantResponse(m))
}

// Approve aprova um comerciante pendente
// @Summary Aprova um comerciante
// @Description Promove o comerciante para aprovado; aprovar de novo é inofensivo e mantém o registro
// @Tags merchants
// @Produce json
// @Param id path string true "ID do comerciante"
// @Success 200 {object} dto.MerchantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /merchants/{id}/approve [patch]
func (c *MerchantController) Approve(ctx *gin.Context) {
	m, err := c.merchantRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, merchant.ErrMerchantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Comerciante não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar comerciante", err.Error()))
		return
	}

	if m.Approve() {
		if err := c.merchantRepository.UpdateStatus(ctx, m.ID, merchant.StatusApproved); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao aprovar comerciante", err.Error()))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantResponse(m))
}

// GetByID busca um comerciante pelo ID
// @Summary Consulta um comerciante
// @Description Retorna um comerciante pelo seu ID
// @Tags merchants
// @Produce json
// @Param id path string true "ID do comerciante"
// @Success 200 {object} dto.MerchantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /merchants/{id} [get]
func (c *MerchantController) GetByID(ctx *gin.Context) {
	m, err := c.merchantRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, merchant.ErrMerchantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Comerciante não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar comerciante", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantResponse(m))
}

// List lista os comerciantes cadastrados
// @Summary Lista comerciantes
// @Description Lista os comerciantes com paginação
// @Tags merchants
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.MerchantListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /merchants [get]
func (c *MerchantController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize
	merchants, err := c.merchantRepository.List(ctx, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar comerciantes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantListResponse(merchants, pagination.Page, pagination.PageSize))
}
