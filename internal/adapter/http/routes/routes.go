package routes

import (
	"log"

	_ "casas_prefab/docs" // This will be auto-generated
	"casas_prefab/internal/adapter/http/handlers"
	repository2 "casas_prefab/internal/adapter/persistence/repository"
	"casas_prefab/internal/infrastructure/config"
	"casas_prefab/internal/infrastructure/database"
	"casas_prefab/internal/infrastructure/rates"
	"casas_prefab/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const DefaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + config.String("PORT", DefaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository2.NewProductDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	rateUseCase := rates.NewProviderFromEnv(ddb)
	productUseCase := usecase.NewProductUseCase(productRepo, rateUseCase)
	quoteUseCase := usecase.NewQuoteUseCase(productRepo, quoteRepo, rateUseCase)

	productHandler := handlers.NewProductHandler(productUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	rateHandler := handlers.NewExchangeRateHandler(rateUseCase)

	adminKey := config.String("ADMIN_API_KEY", "")
	if adminKey == "" {
		log.Printf("[rates][routes] ADMIN_API_KEY not set, admin endpoints are open")
	}

	// Public routes; admin ones are guarded inside addExchangeRateRoutes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, productHandler)
	addQuoteRoutes(v1, quoteHandler)
	addExchangeRateRoutes(v1, rateHandler, adminKey)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
