package handlers

import (
	"errors"
	"net/http"

	request "casas_prefab/internal/adapter/http/dto/request"
	response "casas_prefab/internal/adapter/http/dto/response"
	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	"casas_prefab/internal/usecase"
	"casas_prefab/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles the configurator and quote wizard requests.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PreviewQuote recomputes the breakdown for a selection without saving it.
//
// @Summary      Preview a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Configurator selection"
// @Success      200      {object}  response.QuotePreviewResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	preview, err := h.usecase.Preview(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePreview(preview))
}

// SubmitQuote stores the quote and returns it with the CRM hidden fields.
//
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SubmitQuoteRequest  true  "Selection and contact"
// @Success      201      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Submit(c.Request.Context(), cmd, payload.Contact.ToContact())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote godoc
//
// @Summary      Get a stored quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CURRENCY", "Currency must be USD, CLP or UF", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownZone):
		return pkg.NewDomainErrorSimple("UNKNOWN_ZONE", "Unknown delivery zone", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT", "A name and an email or phone are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinishNotFound):
		return pkg.NewDomainErrorSimple("FINISH_NOT_FOUND", "Finish not available for this model", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTerrainNotFound):
		return pkg.NewDomainErrorSimple("TERRAIN_NOT_FOUND", "Terrain not available for this model", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("MODEL_NOT_FOUND", "Model not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrMissingBasePrice):
		return pkg.NewDomainErrorSimple("PRICE_UNAVAILABLE", "Model has no published price", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
