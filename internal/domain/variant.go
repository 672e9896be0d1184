package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SellingUnit selects which variant shape is authoritative for a product
type SellingUnit string

const (
	SellingUnitWeight   SellingUnit = "weight"
	SellingUnitQuantity SellingUnit = "quantity"
)

// Valid reports whether the selling unit is known
func (u SellingUnit) Valid() bool {
	return u == SellingUnitWeight || u == SellingUnitQuantity
}

// VariationStatus governs purchasability of a single quantity variation
type VariationStatus string

const (
	VariationAvailable VariationStatus = "Available"
	VariationSoldOut   VariationStatus = "Sold out"
	VariationInStock   VariationStatus = "In stock"
)

// Valid reports whether the status is known
func (s VariationStatus) Valid() bool {
	switch s {
	case VariationAvailable, VariationSoldOut, VariationInStock:
		return true
	}
	return false
}

// Variants is the closed set of variant shapes a product can carry.
// Only WeightVariants and QuantityVariations implement it.
type Variants interface {
	SellingUnit() SellingUnit
	Len() int
	isVariants()
}

// WeightVariant is one weight tier such as "500 GM" or "1 KG"
type WeightVariant struct {
	Label     string          `json:"label"`
	Grams     int             `json:"grams"`
	Price     decimal.Decimal `json:"price"`
	MRP       decimal.Decimal `json:"mrp"`
	Stock     int             `json:"stock"`
	IsEnabled bool            `json:"is_enabled"`
}

// WeightVariants is the variant set of a product sold by weight
type WeightVariants []WeightVariant

func (WeightVariants) SellingUnit() SellingUnit { return SellingUnitWeight }
func (v WeightVariants) Len() int               { return len(v) }
func (WeightVariants) isVariants()              {}

// Enabled returns the enabled tiers in their original order
func (v WeightVariants) Enabled() WeightVariants {
	out := make(WeightVariants, 0, len(v))
	for _, wv := range v {
		if wv.IsEnabled {
			out = append(out, wv)
		}
	}
	return out
}

// QuantityVariation is one discrete option of a product sold by quantity
type QuantityVariation struct {
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	DiscPrice decimal.Decimal `json:"disc_price"`
	Stock     int             `json:"stock"`
	Status    VariationStatus `json:"status"`
}

// QuantityVariations is the variant set of a product sold by quantity
type QuantityVariations []QuantityVariation

func (QuantityVariations) SellingUnit() SellingUnit { return SellingUnitQuantity }
func (v QuantityVariations) Len() int               { return len(v) }
func (QuantityVariations) isVariants()              {}

// variantsEnvelope is the JSON/storage form of a variant set
type variantsEnvelope struct {
	SellingUnit    SellingUnit        `json:"selling_unit"`
	WeightVariants WeightVariants     `json:"weight_variants,omitempty"`
	Variations     QuantityVariations `json:"variations,omitempty"`
}

// NewVariants picks the authoritative arm for the given selling unit.
// The array belonging to the other unit is ignored, never merged.
func NewVariants(unit SellingUnit, weight WeightVariants, variations QuantityVariations) (Variants, error) {
	switch unit {
	case SellingUnitWeight:
		if weight == nil {
			weight = WeightVariants{}
		}
		return weight, nil
	case SellingUnitQuantity:
		if variations == nil {
			variations = QuantityVariations{}
		}
		return variations, nil
	default:
		return nil, fmt.Errorf("unknown selling unit %q", unit)
	}
}

// EncodeVariants serializes a variant set into its envelope form
func EncodeVariants(v Variants) ([]byte, error) {
	env := variantsEnvelope{}
	switch vs := v.(type) {
	case WeightVariants:
		env.SellingUnit = SellingUnitWeight
		env.WeightVariants = vs
	case QuantityVariations:
		env.SellingUnit = SellingUnitQuantity
		env.Variations = vs
	case nil:
		return nil, fmt.Errorf("nil variants")
	default:
		return nil, fmt.Errorf("unsupported variants type %T", v)
	}
	return json.Marshal(env)
}

// DecodeVariants parses an envelope back into exactly one variant arm
func DecodeVariants(data []byte) (Variants, error) {
	var env variantsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}
	return NewVariants(env.SellingUnit, env.WeightVariants, env.Variations)
}
