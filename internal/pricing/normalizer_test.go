package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func weightProduct(variants ...domain.WeightVariant) *domain.Product {
	return &domain.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Name:     "Basmati Rice",
		Variants: domain.WeightVariants(variants),
		Status:   domain.ProductActive,
	}
}

func riceTiers() []domain.WeightVariant {
	return []domain.WeightVariant{
		{Label: "500 GM", Grams: 500, Price: dec("50"), MRP: dec("60"), Stock: 4, IsEnabled: true},
		{Label: "1 KG", Grams: 1000, Price: dec("90"), MRP: dec("110"), Stock: 2, IsEnabled: true},
		{Label: "250 GM", Grams: 250, Price: dec("30"), MRP: dec("40"), Stock: 7, IsEnabled: true},
	}
}

func TestNormalize_WeightPicksSmallestEnabledTier(t *testing.T) {
	p := weightProduct(riceTiers()...)

	Normalize(p)

	assertDecimal(t, "30", p.Price)
	assertDecimal(t, "40", p.CompareAtPrice)
	assert.Equal(t, 13, p.Stock)
	assert.Equal(t, 25, p.Discount)
}

func TestNormalize_WeightDisabledTierExcluded(t *testing.T) {
	tiers := riceTiers()
	tiers[2].IsEnabled = false
	p := weightProduct(tiers...)

	Normalize(p)

	assertDecimal(t, "50", p.Price)
	assertDecimal(t, "60", p.CompareAtPrice)
	assert.Equal(t, 6, p.Stock)
	assert.Equal(t, 17, p.Discount)
}

func TestNormalize_WeightDoesNotReorderVariants(t *testing.T) {
	p := weightProduct(riceTiers()...)

	Normalize(p)

	vs := p.Variants.(domain.WeightVariants)
	assert.Equal(t, 500, vs[0].Grams)
	assert.Equal(t, 1000, vs[1].Grams)
	assert.Equal(t, 250, vs[2].Grams)
}

func TestNormalize_WeightTiesKeepInputOrder(t *testing.T) {
	p := weightProduct(
		domain.WeightVariant{Label: "1 KG loose", Grams: 1000, Price: dec("80"), Stock: 1, IsEnabled: true},
		domain.WeightVariant{Label: "1 KG packed", Grams: 1000, Price: dec("95"), Stock: 1, IsEnabled: true},
	)

	Normalize(p)

	assertDecimal(t, "80", p.Price)
}

func TestNormalize_WeightZeroMRPKeepsPreviousCompareAt(t *testing.T) {
	p := weightProduct(
		domain.WeightVariant{Label: "1 KG", Grams: 1000, Price: dec("90"), MRP: decimal.Zero, Stock: 3, IsEnabled: true},
	)
	p.CompareAtPrice = dec("120")

	Normalize(p)

	assertDecimal(t, "90", p.Price)
	assertDecimal(t, "120", p.CompareAtPrice)
	assert.Equal(t, 25, p.Discount)
}

func TestNormalize_WeightNoEnabledTiersIsNoOp(t *testing.T) {
	tiers := riceTiers()
	for i := range tiers {
		tiers[i].IsEnabled = false
	}
	p := weightProduct(tiers...)
	p.Price = dec("45")
	p.CompareAtPrice = dec("50")
	p.Stock = 9

	Normalize(p)

	assertDecimal(t, "45", p.Price)
	assertDecimal(t, "50", p.CompareAtPrice)
	assert.Equal(t, 9, p.Stock)
	assert.Equal(t, 10, p.Discount)
}

func TestNormalize_QuantityUsesFirstVariationAndAllStock(t *testing.T) {
	p := &domain.Product{
		Name: "Eggs",
		Variants: domain.QuantityVariations{
			{Title: "6 pack", Price: dec("10"), Stock: 5, Status: domain.VariationSoldOut},
			{Title: "12 pack", Price: dec("12"), Stock: 3, Status: domain.VariationAvailable},
		},
	}

	Normalize(p)

	assertDecimal(t, "10", p.Price)
	assert.Equal(t, 8, p.Stock)
	assert.Equal(t, 0, p.Discount)
}

func TestNormalize_QuantityEmptyIsNoOp(t *testing.T) {
	p := &domain.Product{
		Variants: domain.QuantityVariations{},
		Price:    dec("15"),
		Stock:    4,
	}

	Normalize(p)

	assertDecimal(t, "15", p.Price)
	assert.Equal(t, 4, p.Stock)
}

func TestNormalize_Idempotent(t *testing.T) {
	cases := map[string]*domain.Product{
		"weight": weightProduct(riceTiers()...),
		"weight zero mrp": weightProduct(
			domain.WeightVariant{Label: "2 KG", Grams: 2000, Price: dec("150"), Stock: 1, IsEnabled: true},
		),
		"quantity": {
			Variants: domain.QuantityVariations{
				{Title: "single", Price: dec("19.99"), Stock: 2, Status: domain.VariationInStock},
			},
			CompareAtPrice: dec("24.50"),
		},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			Normalize(p)
			price, compareAt, stock, discount := p.Price, p.CompareAtPrice, p.Stock, p.Discount

			Normalize(p)

			assert.True(t, price.Equal(p.Price))
			assert.True(t, compareAt.Equal(p.CompareAtPrice))
			assert.Equal(t, stock, p.Stock)
			assert.Equal(t, discount, p.Discount)
		})
	}
}

func TestNormalize_NilVariantsOnlyRecomputesDiscount(t *testing.T) {
	p := &domain.Product{Price: dec("80"), CompareAtPrice: dec("100"), Stock: 1}

	Normalize(p)

	assert.Equal(t, 20, p.Discount)
	assert.Equal(t, 1, p.Stock)
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		compareAt string
		want      int
	}{
		{"regular", "80", "100", 20},
		{"inverted", "100", "80", 0},
		{"equal", "100", "100", 0},
		{"no compare price", "100", "0", 0},
		{"rounds half up", "87.5", "100", 13},
		{"rounds down", "66.7", "100", 33},
		{"fractional", "19.99", "24.99", 20},
		{"free item", "0", "50", 100},
		{"negative price, zero compare", "-10", "0", 0},
		{"negative price and compare", "-20", "-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Discount(dec(tt.price), dec(tt.compareAt)))
		})
	}
}
