package repository

import (
	"encoding/json"
	"log"
	"strconv"

	"casas_prefab/internal/domain/pricing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// priceRangeAttr is the serialized price range of a model. The admin backend writes it either as a
// JSON string or as a map of string/number fields; both decode to the JSON string the pricing parser reads.
// Any other shape decodes to "" so the model shows the placeholder instead of failing the read.
type priceRangeAttr string

func (p *priceRangeAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		*p = priceRangeAttr(v.Value)
	case *types.AttributeValueMemberM:
		fields := make(map[string]any, len(v.Value))
		for k, fv := range v.Value {
			switch f := fv.(type) {
			case *types.AttributeValueMemberS:
				fields[k] = f.Value
			case *types.AttributeValueMemberN:
				fields[k] = json.Number(f.Value)
			}
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			log.Printf("[models][repository] price_range map not serializable err=%v", err)
			*p = ""
			return nil
		}
		*p = priceRangeAttr(raw)
	case *types.AttributeValueMemberNULL:
		*p = ""
	default:
		log.Printf("[models][repository] price_range has unsupported type %T; treating as empty", av)
		*p = ""
	}
	return nil
}

// amountAttr is a modifier amount in USD stored as a number or as a display string ("$50").
// Values that cannot be coerced decode to 0.
type amountAttr float64

func (a *amountAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	*a = 0
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			log.Printf("[models][repository] amount_usd not a number value=%q", v.Value)
			return nil
		}
		*a = amountAttr(f)
	case *types.AttributeValueMemberS:
		f, ok := pricing.CoerceAmount(v.Value)
		if !ok {
			log.Printf("[models][repository] amount_usd not coercible value=%q; using 0", v.Value)
			return nil
		}
		*a = amountAttr(f)
	case *types.AttributeValueMemberNULL:
	default:
		log.Printf("[models][repository] amount_usd has unsupported type %T; using 0", av)
	}
	return nil
}
