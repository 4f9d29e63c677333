package interfaces

import (
	"context"
	"time"

	"casas_prefab/internal/domain/entities"
)

// IRateProvider hands out the rate snapshot in effect at now. It never fails:
// callers receive DefaultRateSet when no synchronized snapshot is usable.
type IRateProvider interface {
	GetCurrentRates(ctx context.Context, now time.Time) entities.ExchangeRateSet
}
