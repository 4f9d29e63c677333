package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "casas_prefab/internal/adapter/http/dto/response"
	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/usecase"
	"casas_prefab/pkg"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the catalog models and their display prices.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
//
// @Summary      List catalog models
// @Tags         models
// @Produce      json
// @Success      200  {array}   response.ProductResponse
// @Router       /models [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
//
// @Summary      Get a catalog model
// @Tags         models
// @Produce      json
// @Param        id   path      string  true  "Model ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /models/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// GetProductPrices returns the model price in the selected currency plus all three renderings.
//
// @Summary      Get model prices
// @Tags         models
// @Produce      json
// @Param        id        path      string  true   "Model ID"
// @Param        currency  query     string  false  "usd, clp or uf (default usd)"
// @Success      200       {object}  response.ProductPricesResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /models/{id}/prices [get]
func (h *ProductHandler) GetProductPrices(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("currency"))
	if raw == "" {
		raw = string(entities.CurrencyUSD)
	}
	currency, err := entities.ParseCurrency(raw)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	prices, err := h.usecase.Prices(c.Request.Context(), c.Param("id"), currency)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductPrices(prices))
}

// ListZones godoc
//
// @Summary      List delivery zones
// @Tags         zones
// @Produce      json
// @Success      200  {array}  response.ZoneResponse
// @Router       /zones [get]
func (h *ProductHandler) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromZones(entities.Zones()))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CURRENCY", "Currency must be USD, CLP or UF", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("MODEL_NOT_FOUND", "Model not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
