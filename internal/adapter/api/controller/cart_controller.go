package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/hugohenrick/exelo-pos/pkg/merchant"
)

// CartController gerencia as requisições relacionadas ao carrinho.
// Cada comerciante tem no máximo um carrinho por localização; o carrinho
// nasce na primeira adição e morre no checkout, na limpeza ou quando a
// última linha é removida.
type CartController struct {
	cartRepository    cart.Repository
	productRepository product.Repository
}

// NewCartController cria uma nova instância de CartController
func NewCartController(cartRepository cart.Repository, productRepository product.Repository) *CartController {
	return &CartController{
		cartRepository:    cartRepository,
		productRepository: productRepository,
	}
}

func (c *CartController) location(ctx *gin.Context) (inventory.Location, bool) {
	location, err := inventory.ParseLocation(ctx.Param("location"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Localização inválida", err.Error()))
		return "", false
	}
	return location, true
}

// Get retorna o carrinho atual
// @Summary Consulta o carrinho
// @Description Retorna o carrinho do comerciante na localização; vazio quando não existe
// @Tags carts
// @Produce json
// @Param location path string true "Localização (shop ou stock)"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carts/{location} [get]
func (c *CartController) Get(ctx *gin.Context) {
	location, ok := c.location(ctx)
	if !ok {
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	current, err := c.cartRepository.FindByMerchant(ctx, merchantID, location)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			ctx.JSON(http.StatusOK, dto.ToCartResponse(cart.NewCart(merchantID, location)))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(current))
}

// AddItem adiciona um produto ao carrinho
// @Summary Adiciona item ao carrinho
// @Description Adiciona quantidade de um produto; se já presente, soma à quantidade existente
// @Tags carts
// @Accept json
// @Produce json
// @Param location path string true "Localização (shop ou stock)"
// @Param item body dto.CartItemRequest true "Item a adicionar"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carts/{location}/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	location, ok := c.location(ctx)
	if !ok {
		return
	}

	var request dto.CartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	if _, err := c.productRepository.FindByID(ctx, request.ProductID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	current, err := c.cartRepository.Mutate(ctx, merchantID, location, func(cur *cart.Cart) error {
		return cur.AddLine(request.ProductID, request.Quantity)
	})
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Item inválido", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(current))
}

// UpdateItem substitui a quantidade de um item do carrinho
// @Summary Altera quantidade de um item
// @Description Substitui a quantidade da linha do produto no carrinho
// @Tags carts
// @Accept json
// @Produce json
// @Param location path string true "Localização (shop ou stock)"
// @Param item body dto.CartItemRequest true "Item com a nova quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carts/{location}/items [put]
func (c *CartController) UpdateItem(ctx *gin.Context) {
	location, ok := c.location(ctx)
	if !ok {
		return
	}

	var request dto.CartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	current, err := c.cartRepository.Mutate(ctx, merchantID, location, func(cur *cart.Cart) error {
		return cur.SetLineQuantity(request.ProductID, request.Quantity)
	})
	if err != nil {
		if errors.Is(err, cart.ErrProductNotInCart) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não está no carrinho", ""))
			return
		}
		if errors.Is(err, cart.ErrInvalidQuantity) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Item inválido", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(current))
}

// RemoveItem remove um produto do carrinho
// @Summary Remove item do carrinho
// @Description Remove a linha do produto; o carrinho é descartado quando a última linha sai
// @Tags carts
// @Produce json
// @Param location path string true "Localização (shop ou stock)"
// @Param productId path string true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carts/{location}/items/{productId} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	location, ok := c.location(ctx)
	if !ok {
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	// O repositório descarta o carrinho quando a última linha sai
	current, err := c.cartRepository.Mutate(ctx, merchantID, location, func(cur *cart.Cart) error {
		return cur.RemoveLine(ctx.Param("productId"))
	})
	if err != nil {
		if errors.Is(err, cart.ErrProductNotInCart) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não está no carrinho", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(current))
}

// Clear descarta o carrinho inteiro
// @Summary Limpa o carrinho
// @Description Remove o carrinho e todas as suas linhas
// @Tags carts
// @Produce json
// @Param location path string true "Localização (shop ou stock)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carts/{location} [delete]
func (c *CartController) Clear(ctx *gin.Context) {
	location, ok := c.location(ctx)
	if !ok {
		return
	}

	merchantID := merchant.GetMerchantID(ctx)

	if err := c.cartRepository.Delete(ctx, merchantID, location); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Carrinho removido com sucesso", nil))
}
