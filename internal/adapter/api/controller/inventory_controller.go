package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/product"
)

// InventoryController gerencia as requisições relacionadas ao estoque
type InventoryController struct {
	inventoryRepository inventory.Repository
	productRepository   product.Repository
}

// NewInventoryController cria uma nova instância de InventoryController
func NewInventoryController(inventoryRepository inventory.Repository, productRepository product.Repository) *InventoryController {
	return &InventoryController{
		inventoryRepository: inventoryRepository,
		productRepository:   productRepository,
	}
}

// StockIn registra uma entrada de estoque
// @Summary Registra entrada de estoque
// @Description Incrementa o saldo de um produto na localização informada
// @Tags inventory
// @Accept json
// @Produce json
// @Param entry body dto.StockInRequest true "Dados da entrada"
// @Success 200 {object} dto.InventoryRecordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/stock-in [post]
func (c *InventoryController) StockIn(ctx *gin.Context) {
	var request dto.StockInRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	location, err := inventory.ParseLocation(request.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Localização inválida", err.Error()))
		return
	}

	if _, err := c.productRepository.FindByID(ctx, request.ProductID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	record, err := c.inventoryRepository.Increase(ctx, request.ProductID, location, request.Quantity)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar entrada de estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryRecordResponse(record))
}

// GetByProduct lista os saldos de estoque de um produto
// @Summary Lista saldos de estoque de um produto
// @Description Retorna os saldos do produto na loja e no depósito
// @Tags inventory
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {array} dto.InventoryRecordResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/product/{id} [get]
func (c *InventoryController) GetByProduct(ctx *gin.Context) {
	records, err := c.inventoryRepository.FindByProduct(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryRecordListResponse(records))
}
