package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/pkg/middleware"
)

// SetupInventoryRoutes configura as rotas para o módulo de estoque
func SetupInventoryRoutes(router *gin.RouterGroup, inventoryController *controller.InventoryController) {
	inventoryRouter := router.Group("/inventory")
	inventoryRouter.Use(middleware.AuthMiddleware())
	{
		inventoryRouter.POST("/stock-in", inventoryController.StockIn)
		inventoryRouter.GET("/product/:id", inventoryController.GetByProduct)
	}
}
