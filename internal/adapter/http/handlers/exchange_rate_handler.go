package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	response "casas_prefab/internal/adapter/http/dto/response"
	"casas_prefab/internal/usecase"
	"casas_prefab/pkg"

	"github.com/gin-gonic/gin"
)

// ExchangeRateHandler exposes the current rate snapshot and the admin sync.
type ExchangeRateHandler struct {
	usecase usecase.IExchangeRateUseCase
}

func NewExchangeRateHandler(uc usecase.IExchangeRateUseCase) *ExchangeRateHandler {
	return &ExchangeRateHandler{usecase: uc}
}

// GetRates godoc
//
// @Summary      Current exchange rates
// @Description  Always answers; is_default flags the built-in fallback rates.
// @Tags         exchange-rates
// @Produce      json
// @Success      200  {object}  response.ExchangeRatesResponse
// @Router       /exchange-rates [get]
func (h *ExchangeRateHandler) GetRates(c *gin.Context) {
	rates := h.usecase.GetCurrentRates(c.Request.Context(), time.Now().UTC())
	c.JSON(http.StatusOK, response.FromExchangeRates(rates))
}

// SyncRates pulls fresh rates from the public source and stores them.
//
// @Summary      Synchronize exchange rates
// @Tags         exchange-rates
// @Produce      json
// @Param        X-Admin-Key  header    string  false  "Admin key"
// @Success      200          {object}  response.ExchangeRatesResponse
// @Failure      401          {object}  pkg.HTTPError
// @Failure      502          {object}  pkg.HTTPError
// @Failure      503          {object}  pkg.HTTPError
// @Router       /exchange-rates/sync [post]
func (h *ExchangeRateHandler) SyncRates(c *gin.Context) {
	rates, err := h.usecase.SyncRates(c.Request.Context())
	if err != nil {
		appErr := mapRatesError(err)
		log.Printf("[rates][handler] sync failed code=%s err=%v", appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExchangeRates(rates))
}

// InvalidateCache drops the in-process snapshot so the next read goes to the store.
//
// @Summary      Drop the cached exchange rates
// @Tags         exchange-rates
// @Param        X-Admin-Key  header  string  false  "Admin key"
// @Success      204
// @Failure      401  {object}  pkg.HTTPError
// @Router       /exchange-rates/cache [delete]
func (h *ExchangeRateHandler) InvalidateCache(c *gin.Context) {
	h.usecase.Invalidate()
	c.Status(http.StatusNoContent)
}

func mapRatesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRateSourceNotConfigured), errors.Is(err, usecase.ErrExchangeRateRepoNotConfigured):
		return pkg.NewDomainError("RATES_SYNC_UNAVAILABLE", "Exchange rate sync is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrRatesSyncFailed):
		return pkg.NewDomainError("RATES_SYNC_FAILED", "Exchange rate sync failed, previous rates kept", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
