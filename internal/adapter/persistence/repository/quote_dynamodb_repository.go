package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/infrastructure/config"
	"casas_prefab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type contactItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Comuna  string `dynamodbav:"comuna,omitempty"`
	Message string `dynamodbav:"message,omitempty"`
}

type quoteItem struct {
	ID              string      `dynamodbav:"id"`
	ProductID       string      `dynamodbav:"product_id"`
	ProductName     string      `dynamodbav:"product_name"`
	FinishName      string      `dynamodbav:"finish_name,omitempty"`
	TerrainName     string      `dynamodbav:"terrain_name,omitempty"`
	Zone            string      `dynamodbav:"zone"`
	Status          string      `dynamodbav:"status"`
	Contact         contactItem `dynamodbav:"contact"`
	BasePrice       string      `dynamodbav:"base_price"`
	FinishModifier  string      `dynamodbav:"finish_modifier"`
	TerrainModifier string      `dynamodbav:"terrain_modifier"`
	ZoneSurcharge   string      `dynamodbav:"zone_surcharge"`
	TotalPrice      string      `dynamodbav:"total_price"`
	Currency        string      `dynamodbav:"currency"`
	ExchangeRates   string      `dynamodbav:"exchange_rates"`
	CreatedAt       string      `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists submitted quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// exchange_rates keeps the JSON snapshot exactly as used for the breakdown.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: config.String("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	rates, err := json.Marshal(q.Breakdown.Rates)
	if err != nil {
		return quoteItem{}, err
	}
	b := q.Breakdown
	return quoteItem{
		ID:          q.ID,
		ProductID:   q.ProductID,
		ProductName: q.ProductName,
		FinishName:  q.FinishName,
		TerrainName: q.TerrainName,
		Zone:        q.Zone,
		Status:      string(q.Status),
		Contact: contactItem{
			Name:    q.Contact.Name,
			Email:   q.Contact.Email,
			Phone:   q.Contact.Phone,
			Comuna:  q.Contact.Comuna,
			Message: q.Contact.Message,
		},
		BasePrice:       floatToString(b.BasePrice),
		FinishModifier:  floatToString(b.FinishModifier),
		TerrainModifier: floatToString(b.TerrainModifier),
		ZoneSurcharge:   floatToString(b.ZoneSurcharge),
		TotalPrice:      floatToString(b.Total),
		Currency:        string(b.Currency),
		ExchangeRates:   string(rates),
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var rates entities.ExchangeRateSet
	if it.ExchangeRates != "" {
		if err := json.Unmarshal([]byte(it.ExchangeRates), &rates); err != nil {
			return entities.Quote{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Quote{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		FinishName:  it.FinishName,
		TerrainName: it.TerrainName,
		Zone:        it.Zone,
		Status:      entities.QuoteStatus(it.Status),
		Contact: entities.Contact{
			Name:    it.Contact.Name,
			Email:   it.Contact.Email,
			Phone:   it.Contact.Phone,
			Comuna:  it.Contact.Comuna,
			Message: it.Contact.Message,
		},
		CreatedAt: createdAt,
		Breakdown: entities.QuoteBreakdown{
			BasePrice:       parseFloat(it.BasePrice),
			FinishModifier:  parseFloat(it.FinishModifier),
			TerrainModifier: parseFloat(it.TerrainModifier),
			ZoneSurcharge:   parseFloat(it.ZoneSurcharge),
			Total:           parseFloat(it.TotalPrice),
			Currency:        entities.Currency(it.Currency),
			Rates:           rates,
		},
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
