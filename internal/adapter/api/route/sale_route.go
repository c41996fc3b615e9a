package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/pkg/middleware"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas avulsas.
// A confirmação de pagamento é chamada pelo gateway, sem autenticação.
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	saleRouter.Use(middleware.AuthMiddleware())
	{
		saleRouter.POST("", saleController.Create)
		saleRouter.GET("", saleController.List)
		saleRouter.GET("/:id", saleController.GetByID)
	}

	router.POST("/payments/confirm", saleController.ConfirmPayment)
}
