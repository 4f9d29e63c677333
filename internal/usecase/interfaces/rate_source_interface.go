package interfaces

import (
	"context"

	"casas_prefab/internal/domain/entities"
)

// IRateSource abstracts the external market-data API used by the daily sync.
type IRateSource interface {
	FetchRates(ctx context.Context) (entities.ExchangeRateSet, error)
}
