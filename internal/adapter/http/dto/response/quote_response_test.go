package response

import (
	"testing"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/usecase"
)

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:          "q-1",
		ProductID:   "canelo",
		ProductName: "Canelo",
		FinishName:  "Premium",
		Zone:        entities.ZoneAustral,
		Status:      entities.QuoteStatusNueva,
		Contact:     entities.Contact{Name: "Camila Rojas", Phone: "+56 9 1234 5678"},
		CreatedAt:   time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
		Breakdown: entities.QuoteBreakdown{
			BasePrice:      2375000,
			FinishModifier: 47500,
			ZoneSurcharge:  363375,
			Total:          2785875,
			Currency:       entities.CurrencyCLP,
			Rates:          entities.DefaultRateSet,
		},
	}
}

func TestFromQuote(t *testing.T) {
	res := FromQuote(sampleQuote())
	if res.ID != "q-1" || res.ModelID != "canelo" || res.Status != "nueva" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Breakdown.Formatted.Total != "$2.785.875 CLP" || res.Breakdown.Formatted.TerrainModifier != "$0 CLP" {
		t.Fatalf("unexpected formatted breakdown: %+v", res.Breakdown.Formatted)
	}
	if !res.Breakdown.ExchangeRates.IsDefault || res.Breakdown.ExchangeRates.Source != "default" {
		t.Fatalf("expected default rates flagged, got %+v", res.Breakdown.ExchangeRates)
	}
	if res.CRMFields[CRMFieldTotalPrice] != "2785875" {
		t.Fatalf("unexpected crm fields: %+v", res.CRMFields)
	}
}

func TestCRMFields(t *testing.T) {
	fields := CRMFields(sampleQuote())
	want := map[string]string{
		"cotizacion_id":           "q-1",
		"modelo":                  "Canelo",
		"precio_base":             "2375000",
		"modificador_terminacion": "47500",
		"modificador_terreno":     "0",
		"recargo_zona":            "363375",
		"precio_total":            "2785875",
		"moneda":                  "CLP",
		"terminacion":             "Premium",
		"terreno":                 "",
		"zona":                    "Zona Austral",
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d: %+v", len(want), len(fields), fields)
	}
	for k, v := range want {
		if fields[k] != v {
			t.Fatalf("field %s: expected %q got %q", k, v, fields[k])
		}
	}

	q := sampleQuote()
	q.Breakdown = entities.QuoteBreakdown{BasePrice: 62.4, Total: 62.4, Currency: entities.CurrencyUF}
	if got := CRMFields(q)[CRMFieldTotalPrice]; got != "62.40" {
		t.Fatalf("unexpected uf amount: %q", got)
	}
}

func TestFromQuotePreview(t *testing.T) {
	finish := entities.Modifier{OwnerID: "f-premium", OwnerName: "Premium", AmountUSD: 50}
	res := FromQuotePreview(usecase.QuotePreview{
		Product:   entities.Product{ID: "canelo", Name: "Canelo"},
		Finish:    &finish,
		Zone:      entities.Zone{Name: entities.ZoneSur, Surcharge: 0.05},
		Breakdown: entities.QuoteBreakdown{BasePrice: 2500, FinishModifier: 50, ZoneSurcharge: 128, Total: 2678, Currency: entities.CurrencyUSD},
	})
	if res.Finish == nil || res.Finish.ID != "f-premium" || res.Terrain != nil {
		t.Fatalf("unexpected options: %+v", res)
	}
	if res.Zone.Surcharge != 0.05 || res.Breakdown.Formatted.Total != "$2,678 USD" {
		t.Fatalf("unexpected preview: %+v", res)
	}
}
