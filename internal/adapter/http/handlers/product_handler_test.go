package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"casas_prefab/internal/adapter/http/handlers/mocks"
	"casas_prefab/internal/domain/entities"
	"casas_prefab/internal/domain/pricing"
	"casas_prefab/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var errBoom = errors.New("boom")

func newProductRouter(t *testing.T) (*gin.Engine, *mocks.MockIProductUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProductUseCase(ctrl)
	h := NewProductHandler(uc)

	r := gin.New()
	r.GET("/v1/models", h.ListProducts)
	r.GET("/v1/models/:id", h.GetProduct)
	r.GET("/v1/models/:id/prices", h.GetProductPrices)
	r.GET("/v1/zones", h.ListZones)
	return r, uc
}

func TestProductHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("repository error", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errBoom)

		w := doJSON(r, http.MethodGet, "/v1/models", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "canelo", Name: "Canelo"}, {ID: "nomada", Name: "Nomada"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/models", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, uc := newProductRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, usecase.ErrProductNotFound)

	w := doJSON(r, http.MethodGet, "/v1/models/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProductHandler_GetProductPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to usd", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().Prices(gomock.Any(), "nomada", entities.CurrencyUSD).Return(usecase.ProductPrices{
			Product:  entities.Product{ID: "nomada"},
			Currency: entities.CurrencyUSD,
			Price:    "$450 USD",
			All:      pricing.FormattedPrices{USD: "$450 USD", CLP: "$427.500 CLP", UF: "11.25 UF"},
			Rates:    entities.DefaultRateSet,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/models/nomada/prices", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Price  string                  `json:"price"`
			Prices pricing.FormattedPrices `json:"prices"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Price != "$450 USD" || body.Prices.CLP != "$427.500 CLP" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("currency query is case insensitive", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().Prices(gomock.Any(), "tepa", entities.CurrencyUF).Return(usecase.ProductPrices{Currency: entities.CurrencyUF, Price: "25 UF"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/models/tepa/prices?currency=uf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		r, _ := newProductRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/models/tepa/prices?currency=ars", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProductHandler_ListZones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, _ := newProductRouter(t)
	w := doJSON(r, http.MethodGet, "/v1/zones", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []struct {
		Name      string  `json:"name"`
		Surcharge float64 `json:"surcharge"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 4 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
