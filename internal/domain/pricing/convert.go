package pricing

import (
	"fmt"

	"casas_prefab/internal/domain/entities"
)

// Convert moves value between currencies through CLP. No intermediate rounding is applied.
// Rates must be positive; ExchangeRateSet.Validate is enforced when snapshots are ingested.
func Convert(value float64, from, to entities.Currency, rates entities.ExchangeRateSet) float64 {
	if from == to {
		return value
	}
	return fromCLP(toCLP(value, from, rates), to, rates)
}

// ConvertModifier converts a modifier amount, always stored in USD, into target.
func ConvertModifier(amountUSD float64, target entities.Currency, rates entities.ExchangeRateSet) float64 {
	return Convert(amountUSD, entities.CurrencyUSD, target, rates)
}

func toCLP(value float64, from entities.Currency, rates entities.ExchangeRateSet) float64 {
	switch from {
	case entities.CurrencyCLP:
		return value
	case entities.CurrencyUSD:
		return value * rates.USDToCLP
	case entities.CurrencyUF:
		return value * rates.UFToCLP
	}
	panic(fmt.Sprintf("pricing: unsupported currency %q", from))
}

func fromCLP(clp float64, to entities.Currency, rates entities.ExchangeRateSet) float64 {
	switch to {
	case entities.CurrencyCLP:
		return clp
	case entities.CurrencyUSD:
		return clp / rates.USDToCLP
	case entities.CurrencyUF:
		return clp / rates.UFToCLP
	}
	panic(fmt.Sprintf("pricing: unsupported currency %q", to))
}
