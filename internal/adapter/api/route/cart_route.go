package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/pkg/middleware"
)

// SetupCartRoutes configura as rotas para o módulo de carrinho
func SetupCartRoutes(router *gin.RouterGroup, cartController *controller.CartController) {
	cartRouter := router.Group("/carts")
	cartRouter.Use(middleware.AuthMiddleware())
	{
		cartRouter.GET("/:location", cartController.Get)
		cartRouter.DELETE("/:location", cartController.Clear)
		cartRouter.POST("/:location/items", cartController.AddItem)
		cartRouter.PUT("/:location/items", cartController.UpdateItem)
		cartRouter.DELETE("/:location/items/:productId", cartController.RemoveItem)
	}
}
