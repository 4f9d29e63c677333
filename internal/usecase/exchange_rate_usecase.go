package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/usecase/interfaces"
)

var (
	ErrRatesSyncFailed               = errors.New("exchange rate sync failed")
	ErrRateSourceNotConfigured       = errors.New("rate source not configured")
	ErrExchangeRateRepoNotConfigured = errors.New("exchange rate repository not configured")
)

// DefaultRatesCacheTTL bounds how long a loaded snapshot is served before the store is read again.
const DefaultRatesCacheTTL = time.Hour

// IExchangeRateUseCase exposes the current rate snapshot and its synchronization.
//
//   - GetCurrentRates never fails; it degrades to entities.DefaultRateSet.
//   - SyncRates replaces the stored snapshot only when the source returned valid rates.

type IExchangeRateUseCase interface {
	interfaces.IRateProvider
	SyncRates(ctx context.Context) (entities.ExchangeRateSet, error)
	Invalidate()
}

type ExchangeRateUseCase struct {
	repo   interfaces.IExchangeRateRepository
	source interfaces.IRateSource
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	cached   entities.ExchangeRateSet
	cachedAt time.Time
	hasCache bool
}

var _ IExchangeRateUseCase = (*ExchangeRateUseCase)(nil)

func NewExchangeRateUseCase(repo interfaces.IExchangeRateRepository, source interfaces.IRateSource, ttl time.Duration) *ExchangeRateUseCase {
	if ttl <= 0 {
		ttl = DefaultRatesCacheTTL
	}
	return &ExchangeRateUseCase{
		repo:   repo,
		source: source,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used to stamp synchronized snapshots.
func (u *ExchangeRateUseCase) WithClock(now func() time.Time) *ExchangeRateUseCase {
	u.now = now
	return u
}

func (u *ExchangeRateUseCase) GetCurrentRates(ctx context.Context, now time.Time) entities.ExchangeRateSet {
	if rates, ok := u.fromCache(now); ok {
		return rates
	}

	if u.repo == nil {
		log.Printf("[rates][usecase] repository not configured; using default rates")
		return entities.DefaultRateSet
	}

	rates, found, err := u.repo.GetCurrent(ctx)
	switch {
	case err != nil:
		log.Printf("[rates][usecase] load failed; using default rates err=%v", err)
		return entities.DefaultRateSet
	case !found:
		log.Printf("[rates][usecase] no synchronized snapshot; using default rates")
		return entities.DefaultRateSet
	case rates.Validate() != nil:
		log.Printf("[rates][usecase] stored snapshot invalid; using default rates usd_to_clp=%v uf_to_clp=%v eur_to_clp=%v",
			rates.USDToCLP, rates.UFToCLP, rates.EURToCLP)
		return entities.DefaultRateSet
	}

	return u.storeLoaded(rates, now)
}

func (u *ExchangeRateUseCase) SyncRates(ctx context.Context) (entities.ExchangeRateSet, error) {
	if u.source == nil {
		return entities.ExchangeRateSet{}, ErrRateSourceNotConfigured
	}
	if u.repo == nil {
		return entities.ExchangeRateSet{}, ErrExchangeRateRepoNotConfigured
	}

	log.Printf("[rates][usecase] sync start")
	fetched, err := u.source.FetchRates(ctx)
	if err != nil {
		log.Printf("[rates][usecase] sync failed fetching source err=%v", err)
		return entities.ExchangeRateSet{}, fmt.Errorf("%w: %v", ErrRatesSyncFailed, err)
	}
	if err := fetched.Validate(); err != nil {
		log.Printf("[rates][usecase] sync rejected usd_to_clp=%v uf_to_clp=%v eur_to_clp=%v",
			fetched.USDToCLP, fetched.UFToCLP, fetched.EURToCLP)
		return entities.ExchangeRateSet{}, fmt.Errorf("%w: %w", ErrRatesSyncFailed, err)
	}

	now := u.now()
	fetched.RetrievedAt = now
	if fetched.Source == "" {
		fetched.Source = entities.RateSourceMindicador
	}

	if err := u.repo.Upsert(ctx, fetched); err != nil {
		log.Printf("[rates][usecase] sync failed persisting snapshot err=%v", err)
		return entities.ExchangeRateSet{}, fmt.Errorf("%w: %v", ErrRatesSyncFailed, err)
	}

	u.store(fetched, now)
	log.Printf("[rates][usecase] sync success source=%s usd_to_clp=%v uf_to_clp=%v eur_to_clp=%v",
		fetched.Source, fetched.USDToCLP, fetched.UFToCLP, fetched.EURToCLP)
	return fetched, nil
}

// Invalidate drops the cached snapshot so the next read goes to the store.
func (u *ExchangeRateUseCase) Invalidate() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.hasCache = false
}

func (u *ExchangeRateUseCase) fromCache(now time.Time) (entities.ExchangeRateSet, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if !u.hasCache || now.Sub(u.cachedAt) >= u.ttl {
		return entities.ExchangeRateSet{}, false
	}
	return u.cached, true
}

// storeLoaded caches a snapshot read from the store unless a sync that finished during the
// read already cached a newer one that is still live, which is then returned instead.
func (u *ExchangeRateUseCase) storeLoaded(rates entities.ExchangeRateSet, at time.Time) entities.ExchangeRateSet {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.hasCache && at.Sub(u.cachedAt) < u.ttl && u.cached.RetrievedAt.After(rates.RetrievedAt) {
		return u.cached
	}
	u.cached = rates
	u.cachedAt = at
	u.hasCache = true
	return rates
}

func (u *ExchangeRateUseCase) store(rates entities.ExchangeRateSet, at time.Time) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cached = rates
	u.cachedAt = at
	u.hasCache = true
}
