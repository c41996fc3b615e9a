package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/pkg/middleware"
)

// SetupMerchantRoutes configura as rotas para o módulo de comerciantes.
// O cadastro é público; consulta e aprovação exigem autenticação.
func SetupMerchantRoutes(router *gin.RouterGroup, merchantController *controller.MerchantController) {
	merchantRouter := router.Group("/merchants")
	{
		merchantRouter.POST("", merchantController.Register)

		authenticated := merchantRouter.Group("")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.GET("", merchantController.List)
			authenticated.GET("/:id", merchantController.GetByID)
			authenticated.PATCH("/:id/approve", merchantController.Approve)
		}
	}
}
