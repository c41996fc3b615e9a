package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/pkg/middleware"
)

// SetupOrderRoutes configura as rotas para o módulo de pedidos
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController) {
	orderRouter := router.Group("/orders")
	orderRouter.Use(middleware.AuthMiddleware())
	{
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/preview/:location", orderController.Preview)
		orderRouter.POST("/checkout", orderController.Checkout)
		orderRouter.POST("/checkout-pending", orderController.CheckoutPending)
		orderRouter.GET("/:id", orderController.GetByID)
		orderRouter.POST("/:id/pay", orderController.Pay)
	}
}
