package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultMindicadorURL = "https://mindicador.cl/api"
	defaultTimeout       = 10 * time.Second
)

var (
	ErrUnexpectedStatus = errors.New("unexpected rate source status")
	ErrMalformedPayload = errors.New("malformed rate source payload")
)

type indicator struct {
	Valor *float64 `json:"valor"`
}

// mindicadorResponse is the subset of the daily indicators payload used by the sync.
type mindicadorResponse struct {
	Dolar *indicator `json:"dolar"`
	UF    *indicator `json:"uf"`
	Euro  *indicator `json:"euro"`
	Fecha string     `json:"fecha"`
}

// MindicadorClient fetches CLP conversion rates from a mindicador.cl compatible API.
type MindicadorClient struct {
	client *resty.Client
	url    string
}

var _ interfaces.IRateSource = (*MindicadorClient)(nil)

func NewMindicadorClient(url string, timeout time.Duration) *MindicadorClient {
	if url == "" {
		url = DefaultMindicadorURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &MindicadorClient{client: client, url: url}
}

func (c *MindicadorClient) FetchRates(ctx context.Context) (entities.ExchangeRateSet, error) {
	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		log.Printf("[rates][source] request failed url=%s err=%v", c.url, err)
		return entities.ExchangeRateSet{}, err
	}
	if resp.StatusCode() != http.StatusOK {
		log.Printf("[rates][source] unexpected status url=%s status=%d", c.url, resp.StatusCode())
		return entities.ExchangeRateSet{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	rates, err := decodeMindicador(resp.Body())
	if err != nil {
		log.Printf("[rates][source] decode failed url=%s err=%v", c.url, err)
		return entities.ExchangeRateSet{}, err
	}
	return rates, nil
}

func decodeMindicador(body []byte) (entities.ExchangeRateSet, error) {
	var payload mindicadorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.ExchangeRateSet{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if !hasValue(payload.Dolar) || !hasValue(payload.UF) || !hasValue(payload.Euro) {
		return entities.ExchangeRateSet{}, fmt.Errorf("%w: missing dolar, uf or euro", ErrMalformedPayload)
	}

	return entities.ExchangeRateSet{
		USDToCLP: *payload.Dolar.Valor,
		UFToCLP:  *payload.UF.Valor,
		EURToCLP: *payload.Euro.Valor,
		Source:   entities.RateSourceMindicador,
	}, nil
}

func hasValue(i *indicator) bool {
	return i != nil && i.Valor != nil
}
