package repository

import (
	"context"
	"log"
	"sort"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/infrastructure/config"
	"casas_prefab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "models"

type modifierItem struct {
	ID        string     `dynamodbav:"id"`
	Name      string     `dynamodbav:"name"`
	AmountUSD amountAttr `dynamodbav:"amount_usd"`
}

type productItem struct {
	ID         string         `dynamodbav:"id"`
	Slug       string         `dynamodbav:"slug"`
	Name       string         `dynamodbav:"name"`
	PriceRange priceRangeAttr `dynamodbav:"price_range,omitempty"`
	Finishes   []modifierItem `dynamodbav:"finishes,omitempty"`
	Terrains   []modifierItem `dynamodbav:"terrains,omitempty"`
}

// ProductDynamoRepository reads catalog models from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Models are authored from the admin backend; this service only reads them.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: config.String("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

// List scans the whole table; the catalog holds a few dozen models at most.
func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	products := make([]entities.Product, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				// One bad item must not take the whole catalog down.
				log.Printf("[models][repository] skipping undecodable item err=%v", err)
				continue
			}
			products = append(products, fromProductItem(it))
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:            it.ID,
		Slug:          it.Slug,
		Name:          it.Name,
		PriceRangeRaw: string(it.PriceRange),
		Finishes:      fromModifierItems(it.Finishes),
		Terrains:      fromModifierItems(it.Terrains),
	}
}

func fromModifierItems(items []modifierItem) []entities.Modifier {
	out := make([]entities.Modifier, 0, len(items))
	for _, m := range items {
		out = append(out, entities.Modifier{OwnerID: m.ID, OwnerName: m.Name, AmountUSD: float64(m.AmountUSD)})
	}
	return out
}
