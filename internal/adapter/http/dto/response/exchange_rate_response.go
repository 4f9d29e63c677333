package response

import (
	"time"

	"casas_prefab/internal/domain/entities"
)

type ExchangeRatesResponse struct {
	USDToCLP  float64   `json:"usd_to_clp"`
	UFToCLP   float64   `json:"uf_to_clp"`
	EURToCLP  float64   `json:"eur_to_clp"`
	UpdatedAt time.Time `json:"updated_at"`
	Source    string    `json:"source"`
	IsDefault bool      `json:"is_default"`
}

func FromExchangeRates(r entities.ExchangeRateSet) ExchangeRatesResponse {
	return ExchangeRatesResponse{
		USDToCLP:  r.USDToCLP,
		UFToCLP:   r.UFToCLP,
		EURToCLP:  r.EURToCLP,
		UpdatedAt: r.RetrievedAt,
		Source:    r.Source,
		IsDefault: r.IsDefault(),
	}
}
