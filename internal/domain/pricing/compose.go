package pricing

import (
	"errors"
	"math"

	"casas_prefab/internal/domain/entities"
)

var ErrMissingBasePrice = errors.New("product has no base price in any currency")

// derivationOrder is the priority used when a currency has to be derived from another one.
var derivationOrder = []entities.Currency{entities.CurrencyUSD, entities.CurrencyCLP, entities.CurrencyUF}

// FormattedPrices holds one display string per currency; underivable entries are empty.
type FormattedPrices struct {
	USD string `json:"usd"`
	CLP string `json:"clp"`
	UF  string `json:"uf"`
}

// GetFormattedPrice returns the labeled price of a product in c.
// A directly quoted value wins; otherwise the value is derived from the first available
// currency when rates are given. Anything else yields Placeholder.
func GetFormattedPrice(priceRangeRaw string, c entities.Currency, rates *entities.ExchangeRateSet) string {
	s, ok := formattedPrice(PriceRangeOrEmpty(priceRangeRaw), c, rates)
	if !ok {
		return Placeholder
	}
	return s
}

// GetAllFormattedPrices is GetFormattedPrice for every currency, with "" instead of Placeholder.
func GetAllFormattedPrices(priceRangeRaw string, rates *entities.ExchangeRateSet) FormattedPrices {
	pr := PriceRangeOrEmpty(priceRangeRaw)
	usd, _ := formattedPrice(pr, entities.CurrencyUSD, rates)
	clp, _ := formattedPrice(pr, entities.CurrencyCLP, rates)
	uf, _ := formattedPrice(pr, entities.CurrencyUF, rates)
	return FormattedPrices{USD: usd, CLP: clp, UF: uf}
}

func formattedPrice(pr entities.PriceRange, c entities.Currency, rates *entities.ExchangeRateSet) (string, bool) {
	if v, ok := pr.Get(c); ok {
		return FormatLabeled(v, c), true
	}
	if rates == nil {
		return "", false
	}
	for _, from := range derivationOrder {
		if v, ok := pr.Get(from); ok {
			return FormatLabeled(Convert(v, from, c, *rates), c), true
		}
	}
	return "", false
}

// BasePriceUSD resolves the canonical USD base price of a product.
// Products quoted only in CLP or UF are converted with rates.
func BasePriceUSD(pr entities.PriceRange, rates entities.ExchangeRateSet) (float64, error) {
	for _, from := range derivationOrder {
		if v, ok := pr.Get(from); ok {
			return Convert(v, from, entities.CurrencyUSD, rates), nil
		}
	}
	return 0, ErrMissingBasePrice
}

// QuoteInput carries everything ComposeQuote needs. Finish and Terrain are optional.
type QuoteInput struct {
	BasePriceUSD          float64
	Finish                *entities.Modifier
	Terrain               *entities.Modifier
	ZoneSurchargeFraction float64
	Currency              entities.Currency
	Rates                 entities.ExchangeRateSet
}

// ComposeQuote builds the itemized quote in USD and converts every line with one rate snapshot.
//
// The zone surcharge is rounded to a whole USD amount when it is computed; no other
// line is rounded. Negative totals are not rejected here.
func ComposeQuote(in QuoteInput) entities.QuoteBreakdown {
	base := in.BasePriceUSD
	finishAmt := 0.0
	if in.Finish != nil {
		finishAmt = in.Finish.AmountUSD
	}
	terrainAmt := 0.0
	if in.Terrain != nil {
		terrainAmt = in.Terrain.AmountUSD
	}

	subtotal := base + finishAmt + terrainAmt
	surcharge := math.Round(subtotal * in.ZoneSurchargeFraction)
	total := subtotal + surcharge

	conv := func(v float64) float64 {
		return ConvertModifier(v, in.Currency, in.Rates)
	}

	return entities.QuoteBreakdown{
		BasePrice:       conv(base),
		FinishModifier:  conv(finishAmt),
		TerrainModifier: conv(terrainAmt),
		ZoneSurcharge:   conv(surcharge),
		Total:           conv(total),
		Currency:        in.Currency,
		Rates:           in.Rates,
	}
}
