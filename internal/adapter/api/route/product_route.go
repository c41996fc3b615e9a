package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/pkg/middleware"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	productRouter.Use(middleware.AuthMiddleware())
	{
		productRouter.POST("", productController.Create)
		productRouter.GET("", productController.List)
		productRouter.GET("/:id", productController.GetByID)
		productRouter.GET("/barcode/:barcode", productController.GetByBarcode)
		productRouter.PUT("/:id", productController.Update)
		productRouter.DELETE("/:id", productController.Delete)
	}
}
