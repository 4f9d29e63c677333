package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	"casas_prefab/internal/usecase/interfaces"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrProductNotFound  = errors.New("product not found")
)

// ProductPrices is the display pricing of a catalog model.
// Price is never empty (it falls back to pricing.Placeholder); entries of All may be.
type ProductPrices struct {
	Product  entities.Product
	Currency entities.Currency
	Price    string
	All      pricing.FormattedPrices
	Rates    entities.ExchangeRateSet
}

// IProductUseCase exposes the catalog read model used by the models pages and the configurator.

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Prices(ctx context.Context, id string, currency entities.Currency) (ProductPrices, error)
}

type ProductUseCase struct {
	repo  interfaces.IProductRepository
	rates interfaces.IRateProvider
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, rates interfaces.IRateProvider) *ProductUseCase {
	return &ProductUseCase{repo: repo, rates: rates}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Prices(ctx context.Context, id string, currency entities.Currency) (ProductPrices, error) {
	if _, err := entities.ParseCurrency(string(currency)); err != nil {
		return ProductPrices{}, err
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return ProductPrices{}, err
	}

	rates := u.rates.GetCurrentRates(ctx, time.Now().UTC())
	return ProductPrices{
		Product:  p,
		Currency: currency,
		Price:    pricing.GetFormattedPrice(p.PriceRangeRaw, currency, &rates),
		All:      pricing.GetAllFormattedPrices(p.PriceRangeRaw, &rates),
		Rates:    rates,
	}, nil
}
