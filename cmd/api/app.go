package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/exelo-pos/internal/adapter/api/route"
	"github.com/hugohenrick/exelo-pos/internal/adapter/memory"
	"github.com/hugohenrick/exelo-pos/internal/adapter/repository"
	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/employee"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/domain/pricing"
	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
	"github.com/hugohenrick/exelo-pos/internal/infrastructure/database"
	"github.com/hugohenrick/exelo-pos/internal/service/checkout"
	"github.com/hugohenrick/exelo-pos/internal/service/settlement"
	"github.com/hugohenrick/exelo-pos/pkg/currency"
	"github.com/hugohenrick/exelo-pos/pkg/gateway"
	"github.com/hugohenrick/exelo-pos/pkg/logger"
	"github.com/hugohenrick/exelo-pos/pkg/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/exelo-pos/docs"
)

// repositories agrupa os repositórios do domínio, independentemente do
// backend de persistência escolhido
type repositories struct {
	products  product.Repository
	inventory inventory.Repository
	carts     cart.Repository
	orders    order.Repository
	sales     sale.Repository
	merchants merchant.Repository
	employees employee.Repository
	uow       checkout.UnitOfWork
}

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	pool   *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	var pool *pgxpool.Pool
	var repos repositories

	// Sem banco configurado, a aplicação sobe com armazenamento em
	// memória (modo de desenvolvimento)
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "" {
		var err error
		pool, err = database.NewPostgresPool()
		if err != nil {
			return nil, err
		}

		repos = repositories{
			products:  repository.NewProductRepository(pool),
			inventory: repository.NewInventoryRepository(pool),
			carts:     repository.NewCartRepository(pool),
			orders:    repository.NewOrderRepository(pool),
			sales:     repository.NewSaleRepository(pool),
			merchants: repository.NewMerchantRepository(pool),
			employees: repository.NewEmployeeRepository(pool),
			uow:       repository.NewUnitOfWork(pool),
		}
	} else {
		log.Warn("banco de dados não configurado, usando armazenamento em memória")

		store := memory.NewStore()
		repos = repositories{
			products:  memory.NewProductRepository(store),
			inventory: memory.NewInventoryRepository(store),
			carts:     memory.NewCartRepository(store),
			orders:    memory.NewOrderRepository(store),
			sales:     memory.NewSaleRepository(store),
			merchants: memory.NewMerchantRepository(store),
			employees: memory.NewEmployeeRepository(store),
			uow:       memory.NewUnitOfWork(store),
		}
	}

	blobs, err := storage.NewLocalStorage(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		return nil, err
	}

	converter := currency.FromEnv()

	checkoutService := checkout.NewService(repos.uow, pricing.PolicyFromEnv(), blobs, log)
	settlementService := settlement.NewService(repos.sales, gateway.FromEnv(), log)

	authController := controller.NewAuthController(repos.employees, repos.merchants, log)
	merchantController := controller.NewMerchantController(repos.merchants, repos.employees)
	productController := controller.NewProductController(repos.products)
	inventoryController := controller.NewInventoryController(repos.inventory, repos.products)
	cartController := controller.NewCartController(repos.carts, repos.products)
	orderController := controller.NewOrderController(checkoutService, repos.orders, converter)
	saleController := controller.NewSaleController(settlementService, repos.sales, converter)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.SetupAuthRoutes(api, authController)
	route.SetupMerchantRoutes(api, merchantController)
	route.SetupProductRoutes(api, productController)
	route.SetupInventoryRoutes(api, inventoryController)
	route.SetupCartRoutes(api, cartController)
	route.SetupOrderRoutes(api, orderController)
	route.SetupSaleRoutes(api, saleController)

	return &App{
		router: router,
		pool:   pool,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
