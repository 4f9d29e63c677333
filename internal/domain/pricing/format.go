package pricing

import (
	"math"
	"strconv"
	"strings"

	"casas_prefab/internal/domain/entities"
)

// Placeholder is shown instead of a price that cannot be determined.
const Placeholder = "Consultar"

// FormatPriceValue coerces raw and formats it for c, or returns Placeholder.
// Numeric values go through FormatPriceNumber.
func FormatPriceValue(raw string, c entities.Currency) string {
	v, ok := CoerceAmount(raw)
	if !ok {
		return Placeholder
	}
	return FormatAmount(v, c)
}

// FormatPriceNumber formats v for c, or returns Placeholder when v is NaN or infinite.
func FormatPriceNumber(v float64, c entities.Currency) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return FormatAmount(v, c)
}

// FormatAmount renders v without currency label:
//   - UF: up to 2 decimals, "," thousands ("1,200.5")
//   - CLP: no decimals, Chilean grouping ("45.000.000")
//   - USD: no decimals, US grouping ("50,000")
func FormatAmount(v float64, c entities.Currency) string {
	switch c {
	case entities.CurrencyUF:
		return formatNumber(v, 2, ",", ".")
	case entities.CurrencyCLP:
		return formatNumber(v, 0, ".", ",")
	default:
		return formatNumber(v, 0, ",", ".")
	}
}

// FormatLabeled renders v with the label used across the site: "1,200 UF", "$50,000 USD".
func FormatLabeled(v float64, c entities.Currency) string {
	num := FormatAmount(v, c)
	if c == entities.CurrencyUF {
		return num + " UF"
	}
	return "$" + num + " " + string(c)
}

func formatNumber(v float64, decimals int, group, point string) string {
	scale := math.Pow(10, float64(decimals))
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0 // drop negative zero
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	out := groupThousands(intPart, group)
	if frac != "" {
		out += point + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
