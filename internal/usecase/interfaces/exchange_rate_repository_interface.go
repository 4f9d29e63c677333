package interfaces

import (
	"context"

	"casas_prefab/internal/domain/entities"
)

// IExchangeRateRepository abstracts the key-value config store holding the current rate snapshot.
//
// GetCurrent returns found=false when no snapshot was ever synchronized.
// Upsert replaces the whole snapshot; concurrent writers resolve as last write wins.

type IExchangeRateRepository interface {
	GetCurrent(ctx context.Context) (rates entities.ExchangeRateSet, found bool, err error)
	Upsert(ctx context.Context, rates entities.ExchangeRateSet) error
}
