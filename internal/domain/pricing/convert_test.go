package pricing

import (
	"math"
	"testing"

	"casas_prefab/internal/domain/entities"
)

var testRates = entities.ExchangeRateSet{USDToCLP: 940.25, UFToCLP: 37981.4, EURToCLP: 1021.7, Source: entities.RateSourceMindicador}

var allCurrencies = []entities.Currency{entities.CurrencyUSD, entities.CurrencyCLP, entities.CurrencyUF}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestConvert_Identity(t *testing.T) {
	for _, rates := range []entities.ExchangeRateSet{testRates, entities.DefaultRateSet} {
		for _, c := range allCurrencies {
			for _, v := range []float64{0, 0.1, 450, 2709.33, -75} {
				if got := Convert(v, c, c, rates); got != v {
					t.Fatalf("identity %s: expected %v got %v", c, v, got)
				}
			}
		}
	}
}

func TestConvert_PivotConsistency(t *testing.T) {
	for _, from := range allCurrencies {
		for _, to := range allCurrencies {
			for _, v := range []float64{1, 450, 2500, 45000000} {
				direct := Convert(v, from, to, testRates)
				pivot := Convert(Convert(v, from, entities.CurrencyCLP, testRates), entities.CurrencyCLP, to, testRates)
				if !almostEqual(direct, pivot) {
					t.Fatalf("%s->%s %v: direct %v pivot %v", from, to, v, direct, pivot)
				}
			}
		}
	}
}

func TestConvert_DefaultRates(t *testing.T) {
	r := entities.DefaultRateSet
	cases := []struct {
		v        float64
		from, to entities.Currency
		want     float64
	}{
		{v: 100, from: entities.CurrencyUSD, to: entities.CurrencyCLP, want: 95000},
		{v: 2, from: entities.CurrencyUF, to: entities.CurrencyCLP, want: 76000},
		{v: 95000, from: entities.CurrencyCLP, to: entities.CurrencyUSD, want: 100},
		{v: 76000, from: entities.CurrencyCLP, to: entities.CurrencyUF, want: 2},
		{v: 40, from: entities.CurrencyUSD, to: entities.CurrencyUF, want: 1},
		{v: 1, from: entities.CurrencyUF, to: entities.CurrencyUSD, want: 40},
	}
	for _, tc := range cases {
		if got := Convert(tc.v, tc.from, tc.to, r); !almostEqual(got, tc.want) {
			t.Fatalf("%v %s->%s: expected %v got %v", tc.v, tc.from, tc.to, tc.want, got)
		}
	}
}

func TestConvertModifier(t *testing.T) {
	for _, c := range allCurrencies {
		want := Convert(50, entities.CurrencyUSD, c, testRates)
		if got := ConvertModifier(50, c, testRates); got != want {
			t.Fatalf("%s: expected %v got %v", c, want, got)
		}
	}
}

func TestConvert_UnsupportedCurrencyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Convert(1, entities.Currency("EUR"), entities.CurrencyCLP, testRates)
}
