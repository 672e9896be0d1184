package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

func detailFields(t *testing.T, err error) []string {
	t.Helper()
	verr, ok := domain.AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)

	fields := make([]string, 0, len(verr.Details))
	for _, d := range verr.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestValidate_WeightValid(t *testing.T) {
	assert.NoError(t, Validate(weightProduct(riceTiers()...)))
}

func TestValidate_WeightAllDisabledRejected(t *testing.T) {
	tiers := riceTiers()
	for i := range tiers {
		tiers[i].IsEnabled = false
	}

	err := Validate(weightProduct(tiers...))

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, detailFields(t, err), "weight_variants")
}

func TestValidate_WeightEmptyRejected(t *testing.T) {
	err := Validate(weightProduct())

	assert.Equal(t, []string{"weight_variants"}, detailFields(t, err))
}

func TestValidate_WeightAllFreeRejected(t *testing.T) {
	tiers := riceTiers()
	for i := range tiers {
		tiers[i].Price = dec("0")
	}

	err := Validate(weightProduct(tiers...))

	assert.Equal(t, []string{"weight_variants"}, detailFields(t, err))
}

func TestValidate_WeightFieldRules(t *testing.T) {
	p := weightProduct(
		domain.WeightVariant{Label: "", Grams: 0, Price: dec("-1"), MRP: dec("-2"), Stock: -3, IsEnabled: false},
		domain.WeightVariant{Label: "1 KG", Grams: 1000, Price: dec("90"), Stock: 1, IsEnabled: true},
	)

	fields := detailFields(t, Validate(p))

	assert.ElementsMatch(t, []string{
		"weight_variants[0].label",
		"weight_variants[0].grams",
		"weight_variants[0].price",
		"weight_variants[0].mrp",
		"weight_variants[0].stock",
	}, fields)
}

func TestValidate_WeightDuplicateEnabledGramsRejected(t *testing.T) {
	p := weightProduct(
		domain.WeightVariant{Label: "1 KG", Grams: 1000, Price: dec("90"), Stock: 1, IsEnabled: true},
		domain.WeightVariant{Label: "1000 GM", Grams: 1000, Price: dec("92"), Stock: 1, IsEnabled: true},
	)

	assert.Equal(t, []string{"weight_variants[1].grams"}, detailFields(t, Validate(p)))
}

func TestValidate_QuantityEmptyRejected(t *testing.T) {
	p := &domain.Product{Variants: domain.QuantityVariations{}}

	assert.Equal(t, []string{"variations"}, detailFields(t, Validate(p)))
}

func TestValidate_QuantityFieldRules(t *testing.T) {
	p := &domain.Product{Variants: domain.QuantityVariations{
		{Title: "", Price: dec("-5"), DiscPrice: dec("-1"), Stock: -1, Status: "Backordered"},
		{Title: "12 pack", Price: dec("12"), Stock: 3, Status: domain.VariationSoldOut},
	}}

	fields := detailFields(t, Validate(p))

	assert.ElementsMatch(t, []string{
		"variations[0].title",
		"variations[0].price",
		"variations[0].disc_price",
		"variations[0].stock",
		"variations[0].status",
	}, fields)
}

func TestValidate_MissingSellingUnit(t *testing.T) {
	assert.Equal(t, []string{"selling_unit"}, detailFields(t, Validate(&domain.Product{})))
}
