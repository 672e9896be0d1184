package pricing

import (
	"fmt"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

// Validate checks that a product's variant set is in a sellable state.
// It runs on the write path before Normalize; Normalize itself never rejects.
func Validate(p *domain.Product) error {
	verr := domain.NewValidationError("invalid product variants")

	switch vs := p.Variants.(type) {
	case domain.WeightVariants:
		validateWeight(verr, vs)
	case domain.QuantityVariations:
		validateQuantity(verr, vs)
	default:
		verr.Add("selling_unit", "selling unit must be weight or quantity")
	}

	if verr.HasDetails() {
		return verr
	}
	return nil
}

func validateWeight(verr *domain.ValidationError, variants domain.WeightVariants) {
	if len(variants) == 0 {
		verr.Add("weight_variants", "at least one weight variant is required")
		return
	}

	seenGrams := make(map[int]int)
	enabled := 0
	pricedEnabled := 0

	for i, v := range variants {
		field := fmt.Sprintf("weight_variants[%d]", i)

		if v.Label == "" {
			verr.Add(field+".label", "label is required")
		}
		if v.Grams <= 0 {
			verr.Add(field+".grams", "grams must be greater than 0")
		}
		if v.Price.IsNegative() {
			verr.Add(field+".price", "price must not be negative")
		}
		if v.MRP.IsNegative() {
			verr.Add(field+".mrp", "mrp must not be negative")
		}
		if v.Stock < 0 {
			verr.Add(field+".stock", "stock must not be negative")
		}

		if !v.IsEnabled {
			continue
		}
		enabled++
		if v.Price.IsPositive() {
			pricedEnabled++
		}
		if first, dup := seenGrams[v.Grams]; dup && v.Grams > 0 {
			verr.Add(field+".grams", fmt.Sprintf("duplicates enabled weight_variants[%d]", first))
		} else {
			seenGrams[v.Grams] = i
		}
	}

	switch {
	case enabled == 0:
		verr.Add("weight_variants", "at least one weight variant must be enabled")
	case pricedEnabled == 0:
		// Would otherwise list a free item against a stale comparison price
		verr.Add("weight_variants", "enabled weight variants cannot all be priced at 0")
	}
}

func validateQuantity(verr *domain.ValidationError, variations domain.QuantityVariations) {
	if len(variations) == 0 {
		verr.Add("variations", "at least one variation is required")
		return
	}

	for i, v := range variations {
		field := fmt.Sprintf("variations[%d]", i)

		if v.Title == "" {
			verr.Add(field+".title", "title is required")
		}
		if v.Price.IsNegative() {
			verr.Add(field+".price", "price must not be negative")
		}
		if v.DiscPrice.IsNegative() {
			verr.Add(field+".disc_price", "disc_price must not be negative")
		}
		if v.Stock < 0 {
			verr.Add(field+".stock", "stock must not be negative")
		}
		if !v.Status.Valid() {
			verr.Add(field+".status", "status must be one of Available, Sold out, In stock")
		}
	}
}
