package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
	"github.com/hugohenrick/exelo-pos/internal/service/settlement"
	"github.com/hugohenrick/exelo-pos/pkg/currency"
	"github.com/hugohenrick/exelo-pos/pkg/merchant"
)

// SaleController gerencia as requisições de vendas avulsas de balcão
type SaleController struct {
	settlementService *settlement.Service
	saleRepository    sale.Repository
	converter         currency.Converter
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(settlementService *settlement.Service, saleRepository sale.Repository, converter currency.Converter) *SaleController {
	return &SaleController{
		settlementService: settlementService,
		saleRepository:    saleRepository,
		converter:         converter,
	}
}

// Create registra uma venda avulsa
// @Summary Registra uma venda avulsa
// @Description Dinheiro conclui na hora; cartão abre cobrança no gateway e fica pendente de confirmação
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.SaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	method, err := sale.ParsePaymentMethod(request.Method)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Forma de pagamento inválida", err.Error()))
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	s, payment, err := c.settlementService.ProcessSale(ctx, merchantID, request.Amount, method)
	if err != nil {
		if errors.Is(err, sale.ErrInvalidAmount) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Valor inválido", err.Error()))
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "Erro ao processar venda", err.Error()))
		return
	}

	response := gin.H{"sale": dto.ToSaleResponse(s, c.converter)}
	if payment != nil {
		response["payment"] = dto.ToPaymentResponse(payment, c.converter)
	}

	ctx.JSON(http.StatusCreated, response)
}

// ConfirmPayment recebe a confirmação assíncrona do gateway
// @Summary Confirma um pagamento no cartão
// @Description Aplica o resultado da cobrança ao pagamento e à venda; confirmações repetidas são inofensivas
// @Tags sales
// @Accept json
// @Produce json
// @Param confirmation body dto.PaymentConfirmationRequest true "Resultado da cobrança"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/confirm [post]
func (c *SaleController) ConfirmPayment(ctx *gin.Context) {
	var request dto.PaymentConfirmationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, payment, err := c.settlementService.ConfirmPayment(ctx, request.TransactionID, *request.Success)
	if err != nil {
		if errors.Is(err, sale.ErrPaymentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pagamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao confirmar pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"sale":    dto.ToSaleResponse(s, c.converter),
		"payment": dto.ToPaymentResponse(payment, c.converter),
	})
}

// GetByID busca uma venda pelo ID
// @Summary Consulta uma venda
// @Description Retorna uma venda avulsa pelo seu ID
// @Tags sales
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (c *SaleController) GetByID(ctx *gin.Context) {
	s, err := c.saleRepository.FindSaleByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s, c.converter))
}

// List lista as vendas do comerciante
// @Summary Lista vendas
// @Description Lista as vendas avulsas do comerciante autenticado
// @Tags sales
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	merchantID := merchant.GetMerchantID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize
	sales, err := c.saleRepository.ListByMerchant(ctx, merchantID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, c.converter))
}
