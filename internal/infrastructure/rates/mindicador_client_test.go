package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casas_prefab/internal/domain/entities"
)

const samplePayload = `{
	"version": "1.7.0",
	"fecha": "2026-10-14T03:00:00.000Z",
	"uf": {"codigo": "uf", "valor": 39485.65},
	"dolar": {"codigo": "dolar", "valor": 948.12},
	"euro": {"codigo": "euro", "valor": 1031.07}
}`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMindicadorClient_FetchRates(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := serve(t, http.StatusOK, samplePayload)
		got, err := NewMindicadorClient(srv.URL, time.Second).FetchRates(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.ExchangeRateSet{USDToCLP: 948.12, UFToCLP: 39485.65, EURToCLP: 1031.07, Source: entities.RateSourceMindicador}
		if got != want {
			t.Fatalf("expected %+v got %+v", want, got)
		}
	})

	t.Run("non 200", func(t *testing.T) {
		srv := serve(t, http.StatusServiceUnavailable, `{"error":"down"}`)
		_, err := NewMindicadorClient(srv.URL, time.Second).FetchRates(context.Background())
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `<html>`)
		_, err := NewMindicadorClient(srv.URL, time.Second).FetchRates(context.Background())
		if !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected ErrMalformedPayload, got %v", err)
		}
	})

	t.Run("missing indicator", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"dolar":{"valor":948.12},"uf":{"valor":39485.65}}`)
		_, err := NewMindicadorClient(srv.URL, time.Second).FetchRates(context.Background())
		if !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected ErrMalformedPayload, got %v", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		if _, err := NewMindicadorClient(url, time.Second).FetchRates(context.Background()); err == nil {
			t.Fatalf("expected connection error")
		}
	})
}

func TestNewMindicadorClient_Defaults(t *testing.T) {
	c := NewMindicadorClient("", 0)
	if c.url != DefaultMindicadorURL || c.client.GetClient().Timeout != defaultTimeout {
		t.Fatalf("unexpected defaults: url=%s timeout=%s", c.url, c.client.GetClient().Timeout)
	}
}
