package interfaces

import (
	"context"

	"casas_prefab/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for submitted quotes.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}
