package request

import (
	"errors"
	"testing"

	"casas_prefab/internal/domain/entities"
)

func TestQuoteRequest_ToCommand(t *testing.T) {
	r := QuoteRequest{ModelID: " canelo ", FinishID: " f-premium", Zone: "austral", Currency: "clp"}
	cmd, err := r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.ProductID != "canelo" || cmd.FinishID != "f-premium" || cmd.TerrainID != "" || cmd.Currency != entities.CurrencyCLP {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	cmd, err = QuoteRequest{ModelID: "nomada", Zone: "central"}.ToCommand()
	if err != nil || cmd.Currency != entities.CurrencyUSD {
		t.Fatalf("expected usd default, got %+v err=%v", cmd, err)
	}

	if _, err := (QuoteRequest{ModelID: "nomada", Zone: "central", Currency: "ars"}).ToCommand(); !errors.Is(err, entities.ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestContactRequest_ToContact(t *testing.T) {
	c := ContactRequest{Name: "Camila", Email: "camila@example.cl", Comuna: "Frutillar"}.ToContact()
	if c.Name != "Camila" || c.Email != "camila@example.cl" || c.Comuna != "Frutillar" {
		t.Fatalf("unexpected contact: %+v", c)
	}
}
