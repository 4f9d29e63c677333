package response

import (
	"strconv"

	"casas_prefab/internal/domain/entities"
)

// Hidden field names expected by the CRM form embed. Renaming any of them breaks lead intake.
const (
	CRMFieldModel           = "modelo"
	CRMFieldBasePrice       = "precio_base"
	CRMFieldFinishModifier  = "modificador_terminacion"
	CRMFieldTerrainModifier = "modificador_terreno"
	CRMFieldZoneSurcharge   = "recargo_zona"
	CRMFieldTotalPrice      = "precio_total"
	CRMFieldCurrency        = "moneda"
	CRMFieldFinish          = "terminacion"
	CRMFieldTerrain         = "terreno"
	CRMFieldZone            = "zona"
	CRMFieldQuoteID         = "cotizacion_id"
)

// CRMFields maps a quote onto the CRM hidden form fields. Amounts are plain numbers
// rounded to the precision of the quote currency.
func CRMFields(q entities.Quote) map[string]string {
	b := q.Breakdown
	return map[string]string{
		CRMFieldQuoteID:         q.ID,
		CRMFieldModel:           q.ProductName,
		CRMFieldBasePrice:       crmAmount(b.BasePrice, b.Currency),
		CRMFieldFinishModifier:  crmAmount(b.FinishModifier, b.Currency),
		CRMFieldTerrainModifier: crmAmount(b.TerrainModifier, b.Currency),
		CRMFieldZoneSurcharge:   crmAmount(b.ZoneSurcharge, b.Currency),
		CRMFieldTotalPrice:      crmAmount(b.Total, b.Currency),
		CRMFieldCurrency:        string(b.Currency),
		CRMFieldFinish:          q.FinishName,
		CRMFieldTerrain:         q.TerrainName,
		CRMFieldZone:            q.Zone,
	}
}

func crmAmount(v float64, c entities.Currency) string {
	if c == entities.CurrencyUF {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
