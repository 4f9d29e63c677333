package entities

import (
	"errors"
	"strings"
	"time"
)

// Currency is one of the display currencies supported by the configurator.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCLP Currency = "CLP"
	CurrencyUF  Currency = "UF"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ParseCurrency accepts the lowercase codes used by the site ("usd", "clp", "uf").
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyCLP:
		return CurrencyCLP, nil
	case CurrencyUF:
		return CurrencyUF, nil
	}
	return "", ErrUnsupportedCurrency
}

// PriceRange holds the per-currency amounts quoted for a product.
// A nil field means the product is not quoted directly in that currency.
type PriceRange struct {
	USD *float64
	CLP *float64
	UF  *float64
}

// Get returns the amount quoted in c, if any.
func (p PriceRange) Get(c Currency) (float64, bool) {
	var v *float64
	switch c {
	case CurrencyUSD:
		v = p.USD
	case CurrencyCLP:
		v = p.CLP
	case CurrencyUF:
		v = p.UF
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

func (p PriceRange) IsEmpty() bool {
	return p.USD == nil && p.CLP == nil && p.UF == nil
}

const (
	RateSourceDefault    = "default"
	RateSourceMindicador = "mindicador"
)

var ErrInvalidRates = errors.New("invalid exchange rates")

// ExchangeRateSet is a snapshot of conversion rates, all expressed in CLP per unit.
//
// Storage model (DynamoDB): a single item in the site config table under key "exchange_rates",
// overwritten on every successful sync.
type ExchangeRateSet struct {
	USDToCLP    float64   `json:"usd_to_clp"`
	UFToCLP     float64   `json:"uf_to_clp"`
	EURToCLP    float64   `json:"eur_to_clp"`
	RetrievedAt time.Time `json:"updated_at"`
	Source      string    `json:"source"`
}

// DefaultRateSet is used when no synchronized snapshot is available.
var DefaultRateSet = ExchangeRateSet{
	USDToCLP: 950,
	UFToCLP:  38000,
	EURToCLP: 1050,
	Source:   RateSourceDefault,
}

func (r ExchangeRateSet) IsDefault() bool {
	return r.Source == RateSourceDefault
}

// Validate must pass before a snapshot is persisted; converters assume positive rates.
func (r ExchangeRateSet) Validate() error {
	if r.USDToCLP <= 0 || r.UFToCLP <= 0 || r.EURToCLP <= 0 {
		return ErrInvalidRates
	}
	return nil
}
