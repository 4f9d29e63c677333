package repository

import (
	"context"
	"encoding/json"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/infrastructure/config"
	"casas_prefab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSiteConfigTableName = "site_config"
	exchangeRatesConfigKey     = "exchange_rates"
)

type siteConfigItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ExchangeRateDynamoRepository stores the rate snapshot in the generic site config table.
//
// Table requirements:
//   - PK: key (string)
//
// The snapshot lives under key "exchange_rates" and is overwritten on every sync.

type ExchangeRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExchangeRateRepository = (*ExchangeRateDynamoRepository)(nil)

func NewExchangeRateDynamoRepository(ddb *dynamodb.Client) *ExchangeRateDynamoRepository {
	return &ExchangeRateDynamoRepository{
		ddb:       ddb,
		tableName: config.String("SITE_CONFIG_TABLE", defaultSiteConfigTableName),
	}
}

func (r *ExchangeRateDynamoRepository) GetCurrent(ctx context.Context) (entities.ExchangeRateSet, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: exchangeRatesConfigKey},
		},
	})
	if err != nil {
		return entities.ExchangeRateSet{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.ExchangeRateSet{}, false, nil
	}

	var it siteConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ExchangeRateSet{}, false, err
	}
	rates, err := decodeRates(it)
	if err != nil {
		return entities.ExchangeRateSet{}, false, err
	}
	return rates, true, nil
}

// Upsert is a plain PutItem: the whole snapshot is replaced, never merged.
func (r *ExchangeRateDynamoRepository) Upsert(ctx context.Context, rates entities.ExchangeRateSet) error {
	it, err := encodeRates(rates)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func encodeRates(rates entities.ExchangeRateSet) (siteConfigItem, error) {
	b, err := json.Marshal(rates)
	if err != nil {
		return siteConfigItem{}, err
	}
	return siteConfigItem{
		Key:       exchangeRatesConfigKey,
		Value:     string(b),
		UpdatedAt: rates.RetrievedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func decodeRates(it siteConfigItem) (entities.ExchangeRateSet, error) {
	var rates entities.ExchangeRateSet
	if err := json.Unmarshal([]byte(it.Value), &rates); err != nil {
		return entities.ExchangeRateSet{}, err
	}
	return rates, nil
}
