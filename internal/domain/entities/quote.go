package entities

import "time"

// QuoteBreakdown is the itemized result of a quotation, every amount in Currency.
// A breakdown is always rebuilt from scratch; callers never patch individual lines.
type QuoteBreakdown struct {
	BasePrice       float64         `json:"base_price"`
	FinishModifier  float64         `json:"finish_modifier"`
	TerrainModifier float64         `json:"terrain_modifier"`
	ZoneSurcharge   float64         `json:"zone_surcharge"`
	Total           float64         `json:"total_price"`
	Currency        Currency        `json:"currency"`
	Rates           ExchangeRateSet `json:"exchange_rates"`
}

type QuoteStatus string

const QuoteStatusNueva QuoteStatus = "nueva"

// Contact is the lead captured by the quote wizard.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Comuna  string `json:"comuna"`
	Message string `json:"message"`
}

// Quote is a submitted quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ExchangeRates is a verbatim copy of the snapshot used to compute the breakdown,
// so a quote can be audited later against the rates that produced it.
type Quote struct {
	ID          string      `json:"id"`
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	FinishName  string      `json:"finish_name"`
	TerrainName string      `json:"terrain_name"`
	Zone        string      `json:"zone"`
	Status      QuoteStatus `json:"status"`
	Contact     Contact     `json:"contact"`
	CreatedAt   time.Time   `json:"created_at"`

	Breakdown QuoteBreakdown `json:"breakdown"`
}
