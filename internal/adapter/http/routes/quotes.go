package routes

import (
	"casas_prefab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathModels        = "/models"
	PathZones         = "/zones"
	PathQuotes        = "/quotes"
	PathExchangeRates = "/exchange-rates"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addCatalogRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	models := rg.Group(PathModels)
	{
		models.GET("", productHandler.ListProducts)
		models.GET("/:id", productHandler.GetProduct)
		models.GET("/:id/prices", productHandler.GetProductPrices)
	}
	rg.GET(PathZones, productHandler.ListZones)
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Recomputed on every configurator change; nothing is stored.
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
	}
}

func addExchangeRateRoutes(rg *gin.RouterGroup, rateHandler *handlers.ExchangeRateHandler, adminKey string) {
	rates := rg.Group(PathExchangeRates)
	{
		rates.GET("", rateHandler.GetRates)

		admin := rates.Group("", handlers.RequireAdminKey(adminKey))
		admin.POST("/sync", rateHandler.SyncRates)
		admin.DELETE("/cache", rateHandler.InvalidateCache)
	}
}
