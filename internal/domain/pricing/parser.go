// Package pricing derives display prices and quote breakdowns from product price ranges,
// option modifiers, zone surcharges and exchange-rate snapshots.
//
// Every function here is pure and safe for concurrent use.
package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"casas_prefab/internal/domain/entities"
)

var (
	ErrEmptyPriceRange     = errors.New("empty price range")
	ErrMalformedPriceRange = errors.New("malformed price range")
)

type rawPriceRange struct {
	USD json.RawMessage `json:"usd"`
	CLP json.RawMessage `json:"clp"`
	UF  json.RawMessage `json:"uf"`
}

// ParsePriceRange decodes the serialized price range stored on a product.
// Fields may be numbers or strings with symbols and separators ("$50,000", "1,200 UF");
// a field that cannot be coerced to a number is left absent.
func ParsePriceRange(raw string) (entities.PriceRange, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return entities.PriceRange{}, ErrEmptyPriceRange
	}

	var r rawPriceRange
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return entities.PriceRange{}, fmt.Errorf("%w: %v", ErrMalformedPriceRange, err)
	}

	return entities.PriceRange{
		USD: decodeAmount(r.USD),
		CLP: decodeAmount(r.CLP),
		UF:  decodeAmount(r.UF),
	}, nil
}

// PriceRangeOrEmpty is the fail-soft form of ParsePriceRange used by display code:
// any error yields an empty range so the page falls back to the quote placeholder.
func PriceRangeOrEmpty(raw string) entities.PriceRange {
	pr, err := ParsePriceRange(raw)
	if err != nil {
		return entities.PriceRange{}
	}
	return pr
}

func decodeAmount(msg json.RawMessage) *float64 {
	if len(msg) == 0 || string(msg) == "null" {
		return nil
	}

	if msg[0] == '"' {
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return nil
		}
		v, ok := CoerceAmount(s)
		if !ok {
			return nil
		}
		return &v
	}

	var v float64
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil
	}
	return &v
}

// CoerceAmount strips everything but digits, dots and a leading minus sign and parses the rest.
// More than one dot is read as Chilean thousands grouping ("45.000.000").
// A later minus ends the number, so a range "50-60" reads as its lower bound.
func CoerceAmount(s string) (float64, bool) {
	var b strings.Builder
scan:
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		case r == '-':
			break scan
		}
	}

	cleaned := b.String()
	if strings.Count(cleaned, ".") > 1 {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
