package routes

import (
	"time"

	"github.com/coder-56/stock-insights/client"
	"github.com/coder-56/stock-insights/config"
	"github.com/coder-56/stock-insights/controller"
	"github.com/coder-56/stock-insights/middleware"
	"github.com/coder-56/stock-insights/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)

	frontendOrigin := cfg.Config.FrontendOrigin
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	alphaClient := client.NewAlphaVantageClient(cfg.Config)

	// --- 2. Services (Dependency Injection) ---
	symbolSvc := service.NewSymbolService(cfg.Config.SymbolFilePath)
	bulkDealSvc := service.NewBulkDealService()
	insightSvc := service.NewInsightService(alphaClient, bulkDealSvc, symbolSvc)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 3. Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewSymbolController(symbolSvc).RegisterRoutes(api)
		controller.NewInsightController(insightSvc, symbolSvc).RegisterRoutes(api)
	}

	return r
}
