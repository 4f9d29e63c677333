package response

import (
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	"casas_prefab/internal/usecase"
)

// FormattedBreakdown holds the display strings of each breakdown line.
type FormattedBreakdown struct {
	BasePrice       string `json:"base_price"`
	FinishModifier  string `json:"finish_modifier"`
	TerrainModifier string `json:"terrain_modifier"`
	ZoneSurcharge   string `json:"zone_surcharge"`
	Total           string `json:"total_price"`
}

type BreakdownResponse struct {
	BasePrice       float64               `json:"base_price"`
	FinishModifier  float64               `json:"finish_modifier"`
	TerrainModifier float64               `json:"terrain_modifier"`
	ZoneSurcharge   float64               `json:"zone_surcharge"`
	Total           float64               `json:"total_price"`
	Currency        string                `json:"currency"`
	ExchangeRates   ExchangeRatesResponse `json:"exchange_rates"`
	Formatted       FormattedBreakdown    `json:"formatted"`
}

type ZoneResponse struct {
	Name      string  `json:"name"`
	Surcharge float64 `json:"surcharge"`
}

type QuotePreviewResponse struct {
	ModelID   string            `json:"model_id"`
	ModelName string            `json:"model_name"`
	Finish    *ModifierResponse `json:"finish"`
	Terrain   *ModifierResponse `json:"terrain"`
	Zone      ZoneResponse      `json:"zone"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type ContactResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Comuna  string `json:"comuna,omitempty"`
	Message string `json:"message,omitempty"`
}

type QuoteResponse struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	ModelID     string            `json:"model_id"`
	ModelName   string            `json:"model_name"`
	FinishName  string            `json:"finish_name,omitempty"`
	TerrainName string            `json:"terrain_name,omitempty"`
	Zone        string            `json:"zone"`
	Contact     ContactResponse   `json:"contact"`
	CreatedAt   time.Time         `json:"created_at"`
	Breakdown   BreakdownResponse `json:"breakdown"`
	CRMFields   map[string]string `json:"crm_fields"`
}

func FromBreakdown(b entities.QuoteBreakdown) BreakdownResponse {
	return BreakdownResponse{
		BasePrice:       b.BasePrice,
		FinishModifier:  b.FinishModifier,
		TerrainModifier: b.TerrainModifier,
		ZoneSurcharge:   b.ZoneSurcharge,
		Total:           b.Total,
		Currency:        string(b.Currency),
		ExchangeRates:   FromExchangeRates(b.Rates),
		Formatted: FormattedBreakdown{
			BasePrice:       pricing.FormatLabeled(b.BasePrice, b.Currency),
			FinishModifier:  pricing.FormatLabeled(b.FinishModifier, b.Currency),
			TerrainModifier: pricing.FormatLabeled(b.TerrainModifier, b.Currency),
			ZoneSurcharge:   pricing.FormatLabeled(b.ZoneSurcharge, b.Currency),
			Total:           pricing.FormatLabeled(b.Total, b.Currency),
		},
	}
}

func FromQuotePreview(p usecase.QuotePreview) QuotePreviewResponse {
	return QuotePreviewResponse{
		ModelID:   p.Product.ID,
		ModelName: p.Product.Name,
		Finish:    optionalModifier(p.Finish),
		Terrain:   optionalModifier(p.Terrain),
		Zone:      ZoneResponse{Name: p.Zone.Name, Surcharge: p.Zone.Surcharge},
		Breakdown: FromBreakdown(p.Breakdown),
	}
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Status:      string(q.Status),
		ModelID:     q.ProductID,
		ModelName:   q.ProductName,
		FinishName:  q.FinishName,
		TerrainName: q.TerrainName,
		Zone:        q.Zone,
		Contact: ContactResponse{
			Name:    q.Contact.Name,
			Email:   q.Contact.Email,
			Phone:   q.Contact.Phone,
			Comuna:  q.Contact.Comuna,
			Message: q.Contact.Message,
		},
		CreatedAt: q.CreatedAt,
		Breakdown: FromBreakdown(q.Breakdown),
		CRMFields: CRMFields(q),
	}
}

func optionalModifier(m *entities.Modifier) *ModifierResponse {
	if m == nil {
		return nil
	}
	r := FromModifier(*m)
	return &r
}
