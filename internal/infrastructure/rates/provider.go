package rates

import (
	"casas_prefab/internal/adapter/persistence/repository"
	"casas_prefab/internal/infrastructure/config"
	"casas_prefab/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewProviderFromEnv wires the rate provider shared by the API and the sync job:
// site_config storage, the mindicador source and the in-process cache.
func NewProviderFromEnv(ddb *dynamodb.Client) *usecase.ExchangeRateUseCase {
	repo := repository.NewExchangeRateDynamoRepository(ddb)
	source := NewMindicadorClient(
		config.String("RATES_SOURCE_URL", DefaultMindicadorURL),
		config.Duration("RATES_SOURCE_TIMEOUT", defaultTimeout),
	)
	return usecase.NewExchangeRateUseCase(repo, source, config.Duration("RATES_CACHE_TTL", usecase.DefaultRatesCacheTTL))
}
