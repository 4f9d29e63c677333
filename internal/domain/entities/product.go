package entities

// Modifier is a signed price delta attached to a finish or terrain option.
// Amounts are always stored in USD.
type Modifier struct {
	OwnerID   string  `json:"id"`
	OwnerName string  `json:"name"`
	AmountUSD float64 `json:"amount_usd"`
}

// Product is a house model offered in the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PriceRangeRaw keeps the serialized price range exactly as the admin authored it,
// e.g. {"usd": "$50,000", "clp": "$45.000.000", "uf": "1,200 UF"}.
type Product struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	PriceRangeRaw string     `json:"price_range"`
	Finishes      []Modifier `json:"finishes"`
	Terrains      []Modifier `json:"terrains"`
}

// Finish returns the finish option with the given id.
func (p Product) Finish(id string) (Modifier, bool) {
	return findModifier(p.Finishes, id)
}

// Terrain returns the terrain option with the given id.
func (p Product) Terrain(id string) (Modifier, bool) {
	return findModifier(p.Terrains, id)
}

func findModifier(list []Modifier, id string) (Modifier, bool) {
	for _, m := range list {
		if m.OwnerID == id {
			return m, true
		}
	}
	return Modifier{}, false
}
