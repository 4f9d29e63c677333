package response

import (
	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	"casas_prefab/internal/usecase"
)

type ModifierResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AmountUSD float64 `json:"amount_usd"`
}

type ProductResponse struct {
	ID       string             `json:"id"`
	Slug     string             `json:"slug"`
	Name     string             `json:"name"`
	Finishes []ModifierResponse `json:"finishes"`
	Terrains []ModifierResponse `json:"terrains"`
}

type ProductPricesResponse struct {
	ModelID       string                  `json:"model_id"`
	Currency      string                  `json:"currency"`
	Price         string                  `json:"price"`
	Prices        pricing.FormattedPrices `json:"prices"`
	ExchangeRates ExchangeRatesResponse   `json:"exchange_rates"`
}

func FromModifier(m entities.Modifier) ModifierResponse {
	return ModifierResponse{ID: m.OwnerID, Name: m.OwnerName, AmountUSD: m.AmountUSD}
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Slug:     p.Slug,
		Name:     p.Name,
		Finishes: fromModifiers(p.Finishes),
		Terrains: fromModifiers(p.Terrains),
	}
}

func FromProducts(list []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromProductPrices(p usecase.ProductPrices) ProductPricesResponse {
	return ProductPricesResponse{
		ModelID:       p.Product.ID,
		Currency:      string(p.Currency),
		Price:         p.Price,
		Prices:        p.All,
		ExchangeRates: FromExchangeRates(p.Rates),
	}
}

func FromZones(zones []entities.Zone) []ZoneResponse {
	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, ZoneResponse{Name: z.Name, Surcharge: z.Surcharge})
	}
	return out
}

func fromModifiers(list []entities.Modifier) []ModifierResponse {
	out := make([]ModifierResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModifier(m))
	}
	return out
}
