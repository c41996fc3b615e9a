package controller

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/service/checkout"
	"github.com/hugohenrick/exelo-pos/pkg/currency"
	"github.com/hugohenrick/exelo-pos/pkg/merchant"
)

// OrderController gerencia as requisições de checkout e consulta de pedidos
type OrderController struct {
	checkoutService *checkout.Service
	orderRepository order.Repository
	converter       currency.Converter
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(checkoutService *checkout.Service, orderRepository order.Repository, converter currency.Converter) *OrderController {
	return &OrderController{
		checkoutService: checkoutService,
		orderRepository: orderRepository,
		converter:       converter,
	}
}

// handleCheckoutError traduz os erros do fluxo de checkout em respostas HTTP
func (c *OrderController) handleCheckoutError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrEmptyCart), errors.Is(err, cart.ErrCartNotFound):
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Carrinho vazio", "adicione itens antes de fechar o pedido"))
	case inventory.IsInsufficientStock(err):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Estoque insuficiente", err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar pedido", err.Error()))
	}
}

// Preview calcula o detalhamento de valores do carrinho
// @Summary Pré-visualiza o pedido
// @Description Calcula subtotal, imposto, taxa e total do carrinho sem fechar o pedido
// @Tags orders
// @Produce json
// @Param location path string true "Localização (shop ou stock)"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/preview/{location} [get]
func (c *OrderController) Preview(ctx *gin.Context) {
	location, err := inventory.ParseLocation(ctx.Param("location"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Localização inválida", err.Error()))
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	breakdown, err := c.checkoutService.Preview(ctx, merchantID, location)
	if err != nil {
		c.handleCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(breakdown, c.converter))
}

// Checkout fecha o carrinho como um pedido pago
// @Summary Fecha o pedido com pagamento imediato
// @Description Congela preços, baixa o estoque, limpa o carrinho e registra o pedido como pago, tudo atomicamente
// @Tags orders
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Dados do checkout"
// @Success 201 {object} dto.OrderResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/checkout [post]
func (c *OrderController) Checkout(ctx *gin.Context) {
	var request dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	location, err := inventory.ParseLocation(request.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Localização inválida", err.Error()))
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	o, err := c.checkoutService.PlaceOrder(ctx, merchantID, location)
	if err != nil {
		c.handleCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o, c.converter))
}

// CheckoutPending fecha o carrinho como um pedido a pagar
// @Summary Fecha o pedido com pagamento posterior
// @Description Registra o pedido como pendente, com identidade opcional do cliente e assinatura em base64
// @Tags orders
// @Accept json
// @Produce json
// @Param checkout body dto.PendingCheckoutRequest true "Dados do checkout a pagar"
// @Success 201 {object} dto.OrderResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/checkout-pending [post]
func (c *OrderController) CheckoutPending(ctx *gin.Context) {
	var request dto.PendingCheckoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	location, err := inventory.ParseLocation(request.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Localização inválida", err.Error()))
		return
	}

	var signature []byte
	if request.Signature != "" {
		signature, err = base64.StdEncoding.DecodeString(request.Signature)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Assinatura inválida", "esperado conteúdo em base64"))
			return
		}
	}

	merchantID := merchant.GetMerchantID(ctx)

	o, err := c.checkoutService.PlacePendingOrder(ctx, merchantID, location, request.CustomerName, request.CustomerMobile, signature)
	if err != nil {
		c.handleCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o, c.converter))
}

// Pay promove um pedido pendente para pago
// @Summary Registra o pagamento de um pedido
// @Description Promove o status pending para paid; pagar um pedido já pago é inofensivo
// @Tags orders
// @Produce json
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/pay [post]
func (c *OrderController) Pay(ctx *gin.Context) {
	o, err := c.checkoutService.MarkPaid(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pedido não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o, c.converter))
}

// GetByID busca um pedido com seus itens e detalhamento
// @Summary Consulta um pedido
// @Description Retorna o pedido com itens congelados e valores recalculados dos preços históricos
// @Tags orders
// @Produce json
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (c *OrderController) GetByID(ctx *gin.Context) {
	o, _, err := c.checkoutService.OrderDetails(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pedido não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o, c.converter))
}

// List lista os pedidos do comerciante
// @Summary Lista pedidos
// @Description Lista os pedidos do comerciante autenticado, opcionalmente filtrados por localização
// @Tags orders
// @Produce json
// @Param location query string false "Localização (shop ou stock)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	merchantID := merchant.GetMerchantID(ctx)

	var location inventory.Location
	if raw := ctx.Query("location"); raw != "" {
		parsed, err := inventory.ParseLocation(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Localização inválida", err.Error()))
			return
		}
		location = parsed
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize
	orders, err := c.orderRepository.ListByMerchant(ctx, merchantID, location, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pedidos", err.Error()))
		return
	}

	totalCount, err := c.orderRepository.CountByMerchant(ctx, merchantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, c.converter, totalCount, pagination.Page, pagination.PageSize))
}
