package interfaces

import (
	"context"

	"casas_prefab/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for catalog models.
// GetByID returns a zero Product (empty ID) when nothing matches.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
