// Package pricing derives the canonical price, compare-at price, stock and
// discount of a product from its variant set.
package pricing

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Normalize overwrites the derived fields of p from its variants.
//
// Weight products take price and compare-at price from the enabled tier with
// the fewest grams and sum stock over enabled tiers only. A weight product with
// no enabled tier keeps its previous derived values. Quantity products take the
// price of the first variation and sum stock over every variation regardless of
// status. Discount is recomputed last in every case.
//
// Normalize never fails and is idempotent.
func Normalize(p *domain.Product) {
	switch vs := p.Variants.(type) {
	case domain.WeightVariants:
		normalizeWeight(p, vs)
	case domain.QuantityVariations:
		normalizeQuantity(p, vs)
	}

	p.Discount = Discount(p.Price, p.CompareAtPrice)
}

func normalizeWeight(p *domain.Product, variants domain.WeightVariants) {
	enabled := variants.Enabled()
	if len(enabled) == 0 {
		return
	}

	slices.SortStableFunc(enabled, func(a, b domain.WeightVariant) int {
		return cmp.Compare(a.Grams, b.Grams)
	})

	entry := enabled[0]
	p.Price = entry.Price
	// A zero mrp keeps whatever comparison price was set before
	if entry.MRP.IsPositive() {
		p.CompareAtPrice = entry.MRP
	}

	stock := 0
	for _, v := range enabled {
		stock += v.Stock
	}
	p.Stock = stock
}

func normalizeQuantity(p *domain.Product, variations domain.QuantityVariations) {
	if len(variations) == 0 {
		return
	}

	p.Price = variations[0].Price

	stock := 0
	for _, v := range variations {
		stock += v.Stock
	}
	p.Stock = stock
}

// Discount returns round(100 * (compareAt - price) / compareAt) using
// half-up rounding, or 0 when compareAt does not exceed price.
// The positive compareAt check guards against negative prices, which
// would otherwise pass the comparison and divide by a non-positive value.
func Discount(price, compareAt decimal.Decimal) int {
	if !compareAt.GreaterThan(price) || !compareAt.IsPositive() {
		return 0
	}

	pct := compareAt.Sub(price).Mul(hundred).Div(compareAt).Round(0)
	return int(pct.IntPart())
}
