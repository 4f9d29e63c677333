package usecase

import (
	"context"
	"errors"
	"testing"

	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	mock_interfaces "casas_prefab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "canelo").Return(entities.Product{}, nil)

		if _, err := uc.GetByID(context.Background(), "canelo"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "canelo").Return(canelo, nil)

		res, err := uc.GetByID(context.Background(), " canelo ")
		if err != nil || res.Name != "Canelo" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestProductUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo, nil)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Product{canelo, nomada}, nil)

	res, err := uc.List(context.Background())
	if err != nil || len(res) != 2 {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
}

func TestProductUseCase_Prices(t *testing.T) {
	t.Run("unsupported currency", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		if _, err := uc.Prices(context.Background(), "canelo", "BTC"); !errors.Is(err, entities.ErrUnsupportedCurrency) {
			t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
		}
	})

	t.Run("direct and derived prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIRateProvider(ctrl)
		uc := NewProductUseCase(repo, rates)
		repo.EXPECT().GetByID(gomock.Any(), "nomada").Return(nomada, nil)
		rates.EXPECT().GetCurrentRates(gomock.Any(), gomock.Any()).Return(entities.DefaultRateSet)

		res, err := uc.Prices(context.Background(), "nomada", entities.CurrencyCLP)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != "$427.500 CLP" {
			t.Fatalf("unexpected clp price: %q", res.Price)
		}
		if res.All.USD != "$450 USD" || res.All.UF != "11.25 UF" {
			t.Fatalf("unexpected prices: %+v", res.All)
		}
	})

	t.Run("no price at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIRateProvider(ctrl)
		uc := NewProductUseCase(repo, rates)
		repo.EXPECT().GetByID(gomock.Any(), "vacio").Return(vacio, nil)
		rates.EXPECT().GetCurrentRates(gomock.Any(), gomock.Any()).Return(entities.DefaultRateSet)

		res, err := uc.Prices(context.Background(), "vacio", entities.CurrencyUF)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != pricing.Placeholder || res.All != (pricing.FormattedPrices{}) {
			t.Fatalf("unexpected prices: %+v", res)
		}
	})
}
