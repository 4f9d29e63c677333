package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	"casas_prefab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFinishNotFound  = errors.New("finish not found")
	ErrTerrainNotFound = errors.New("terrain not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidContact  = errors.New("invalid contact")
)

// QuoteCommand is one configurator selection. FinishID and TerrainID are optional.
type QuoteCommand struct {
	ProductID string
	FinishID  string
	TerrainID string
	Zone      string
	Currency  entities.Currency
}

// QuotePreview is a computed, unsaved quote.
type QuotePreview struct {
	Product   entities.Product
	Finish    *entities.Modifier
	Terrain   *entities.Modifier
	Zone      entities.Zone
	Breakdown entities.QuoteBreakdown
}

// IQuoteUseCase exposes the quote wizard operations:
//   - configurator recomputation => Preview()
//   - final wizard step => Submit()
//   - admin lookup => GetByID()

type IQuoteUseCase interface {
	Preview(ctx context.Context, cmd QuoteCommand) (QuotePreview, error)
	Submit(ctx context.Context, cmd QuoteCommand, contact entities.Contact) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	products interfaces.IProductRepository
	quotes   interfaces.IQuoteRepository
	rates    interfaces.IRateProvider
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(products interfaces.IProductRepository, quotes interfaces.IQuoteRepository, rates interfaces.IRateProvider) *QuoteUseCase {
	return &QuoteUseCase{products: products, quotes: quotes, rates: rates}
}

func (u *QuoteUseCase) Preview(ctx context.Context, cmd QuoteCommand) (QuotePreview, error) {
	currency, err := entities.ParseCurrency(string(cmd.Currency))
	if err != nil {
		return QuotePreview{}, err
	}
	zone, err := entities.LookupZone(cmd.Zone)
	if err != nil {
		return QuotePreview{}, err
	}

	productID := strings.TrimSpace(cmd.ProductID)
	if productID == "" {
		return QuotePreview{}, ErrInvalidProductID
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return QuotePreview{}, err
	}
	if product.ID == "" {
		return QuotePreview{}, ErrProductNotFound
	}

	finish, err := optionalModifier(strings.TrimSpace(cmd.FinishID), product.Finish, ErrFinishNotFound)
	if err != nil {
		return QuotePreview{}, err
	}
	terrain, err := optionalModifier(strings.TrimSpace(cmd.TerrainID), product.Terrain, ErrTerrainNotFound)
	if err != nil {
		return QuotePreview{}, err
	}

	// One snapshot for the base price resolution and every breakdown line.
	rates := u.rates.GetCurrentRates(ctx, time.Now().UTC())
	baseUSD, err := pricing.BasePriceUSD(pricing.PriceRangeOrEmpty(product.PriceRangeRaw), rates)
	if err != nil {
		return QuotePreview{}, err
	}

	breakdown := pricing.ComposeQuote(pricing.QuoteInput{
		BasePriceUSD:          baseUSD,
		Finish:                finish,
		Terrain:               terrain,
		ZoneSurchargeFraction: zone.Surcharge,
		Currency:              currency,
		Rates:                 rates,
	})

	return QuotePreview{
		Product:   product,
		Finish:    finish,
		Terrain:   terrain,
		Zone:      zone,
		Breakdown: breakdown,
	}, nil
}

func (u *QuoteUseCase) Submit(ctx context.Context, cmd QuoteCommand, contact entities.Contact) (entities.Quote, error) {
	contact = normalizeContact(contact)
	if contact.Name == "" || (contact.Email == "" && contact.Phone == "") {
		return entities.Quote{}, ErrInvalidContact
	}

	preview, err := u.Preview(ctx, cmd)
	if err != nil {
		return entities.Quote{}, err
	}
	if preview.Breakdown.Rates.IsDefault() {
		log.Printf("[quote][usecase] submitting with default rates product_id=%s currency=%s", preview.Product.ID, preview.Breakdown.Currency)
	}

	q := entities.Quote{
		ID:          uuid.NewString(),
		ProductID:   preview.Product.ID,
		ProductName: preview.Product.Name,
		Zone:        preview.Zone.Name,
		Status:      entities.QuoteStatusNueva,
		Contact:     contact,
		CreatedAt:   time.Now().UTC(),
		Breakdown:   preview.Breakdown,
	}
	if preview.Finish != nil {
		q.FinishName = preview.Finish.OwnerName
	}
	if preview.Terrain != nil {
		q.TerrainName = preview.Terrain.OwnerName
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed product_id=%s err=%v", q.ProductID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] create success quote_id=%s product_id=%s total=%.2f currency=%s",
		created.ID, created.ProductID, created.Breakdown.Total, created.Breakdown.Currency)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func optionalModifier(id string, find func(string) (entities.Modifier, bool), notFound error) (*entities.Modifier, error) {
	if id == "" {
		return nil, nil
	}
	m, ok := find(id)
	if !ok {
		return nil, notFound
	}
	return &m, nil
}

func normalizeContact(c entities.Contact) entities.Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Comuna = strings.TrimSpace(c.Comuna)
	c.Message = strings.TrimSpace(c.Message)
	return c
}
