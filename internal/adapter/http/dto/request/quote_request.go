package request

import (
	"strings"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/usecase"
)

// QuoteRequest is the configurator selection sent on every recomputation.
// Currency defaults to USD when omitted.
type QuoteRequest struct {
	ModelID   string `json:"model_id" binding:"required"`
	FinishID  string `json:"finish_id"`
	TerrainID string `json:"terrain_id"`
	Zone      string `json:"zone" binding:"required"`
	Currency  string `json:"currency"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Comuna  string `json:"comuna"`
	Message string `json:"message"`
}

// SubmitQuoteRequest is the last step of the quote wizard.
type SubmitQuoteRequest struct {
	QuoteRequest
	Contact ContactRequest `json:"contact"`
}

func (r QuoteRequest) ToCommand() (usecase.QuoteCommand, error) {
	raw := strings.TrimSpace(r.Currency)
	if raw == "" {
		raw = string(entities.CurrencyUSD)
	}
	currency, err := entities.ParseCurrency(raw)
	if err != nil {
		return usecase.QuoteCommand{}, err
	}
	return usecase.QuoteCommand{
		ProductID: strings.TrimSpace(r.ModelID),
		FinishID:  strings.TrimSpace(r.FinishID),
		TerrainID: strings.TrimSpace(r.TerrainID),
		Zone:      r.Zone,
		Currency:  currency,
	}, nil
}

func (r ContactRequest) ToContact() entities.Contact {
	return entities.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Comuna:  r.Comuna,
		Message: r.Message,
	}
}
