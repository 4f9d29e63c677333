package pricing

import (
	"errors"
	"testing"
)

func TestParsePriceRange(t *testing.T) {
	t.Run("empty and null", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "null"} {
			pr, err := ParsePriceRange(raw)
			if !errors.Is(err, ErrEmptyPriceRange) {
				t.Fatalf("raw %q: expected ErrEmptyPriceRange, got %v", raw, err)
			}
			if !pr.IsEmpty() {
				t.Fatalf("raw %q: expected empty range, got %+v", raw, pr)
			}
		}
	})

	t.Run("not json", func(t *testing.T) {
		for _, raw := range []string{"not json", "[1,2]", "42", `{"usd":`} {
			pr, err := ParsePriceRange(raw)
			if !errors.Is(err, ErrMalformedPriceRange) {
				t.Fatalf("raw %q: expected ErrMalformedPriceRange, got %v", raw, err)
			}
			if !pr.IsEmpty() {
				t.Fatalf("raw %q: expected empty range", raw)
			}
		}
	})

	t.Run("strings with symbols", func(t *testing.T) {
		pr, err := ParsePriceRange(`{"usd": "$50,000", "clp": "$45,000,000", "uf": "1,200 UF"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pr.USD == nil || *pr.USD != 50000 {
			t.Fatalf("unexpected usd: %v", pr.USD)
		}
		if pr.CLP == nil || *pr.CLP != 45000000 {
			t.Fatalf("unexpected clp: %v", pr.CLP)
		}
		if pr.UF == nil || *pr.UF != 1200 {
			t.Fatalf("unexpected uf: %v", pr.UF)
		}
	})

	t.Run("numbers and missing fields", func(t *testing.T) {
		pr, err := ParsePriceRange(`{"usd": 450.5, "uf": null}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pr.USD == nil || *pr.USD != 450.5 {
			t.Fatalf("unexpected usd: %v", pr.USD)
		}
		if pr.CLP != nil || pr.UF != nil {
			t.Fatalf("expected clp and uf absent, got %+v", pr)
		}
	})

	t.Run("uncoercible field is absent", func(t *testing.T) {
		pr, err := ParsePriceRange(`{"usd": "a consultar", "clp": true}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pr.IsEmpty() {
			t.Fatalf("expected empty range, got %+v", pr)
		}
	})
}

func TestPriceRangeOrEmpty(t *testing.T) {
	if pr := PriceRangeOrEmpty("not json"); !pr.IsEmpty() {
		t.Fatalf("expected empty range")
	}
	if pr := PriceRangeOrEmpty(`{"uf":"980"}`); pr.UF == nil || *pr.UF != 980 {
		t.Fatalf("expected uf 980, got %+v", pr)
	}
}

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "$50,000", want: 50000, ok: true},
		{in: "1,200 UF", want: 1200, ok: true},
		{in: "$45.000.000", want: 45000000, ok: true},
		{in: "1200.75", want: 1200.75, ok: true},
		{in: "-300", want: -300, ok: true},
		{in: "UF 1.500-", want: 1.5, ok: true},
		{in: "50-60", want: 50, ok: true},
		{in: "$2.500.000 - $3.100.000", want: 2500000, ok: true},
		{in: "-$1.200-5", want: -1.2, ok: true},
		{in: "", ok: false},
		{in: "Consultar", ok: false},
		{in: "--", ok: false},
	}
	for _, tc := range cases {
		got, ok := CoerceAmount(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v got %v", tc.in, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%q: expected %v got %v", tc.in, tc.want, got)
		}
	}
}
