package importer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

var header = []interface{}{
	"seller_id", "name", "category", "selling_unit", "label_or_title",
	"grams", "price", "mrp_or_disc_price", "stock", "enabled_or_status",
}

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseReader_GroupsConsecutiveRows(t *testing.T) {
	seller := uuid.NewString()
	buf := workbook(t,
		[]interface{}{seller, "Basmati Rice", "Grains", "weight", "1 KG", 1000, "90", "110", 2, "yes"},
		[]interface{}{seller, "Basmati Rice", "Grains", "weight", "500 GM", 500, "50", "60", 4, ""},
		[]interface{}{seller, "Basmati Rice", "Grains", "weight", "5 KG", 5000, "400", "", 0, "no"},
		[]interface{}{seller, "Eggs", "Dairy", "quantity", "6 pack", "", "10", "9", 5, "Available"},
		[]interface{}{seller, "Eggs", "Dairy", "quantity", "12 pack", "", "19", "", 0, "sold out"},
	)

	res, err := ParseReader(buf)

	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Drafts, 2)

	rice := res.Drafts[0]
	assert.Equal(t, 2, rice.Row)
	assert.Equal(t, "Grains", rice.Product.Category)
	weights, ok := rice.Product.Variants.(domain.WeightVariants)
	require.True(t, ok)
	require.Len(t, weights, 3)
	assert.True(t, weights[1].IsEnabled)
	assert.False(t, weights[2].IsEnabled)
	assert.True(t, decimal.NewFromInt(60).Equal(weights[1].MRP))
	assert.True(t, weights[2].MRP.IsZero())

	eggs := res.Drafts[1]
	assert.Equal(t, 5, eggs.Row)
	variations, ok := eggs.Product.Variants.(domain.QuantityVariations)
	require.True(t, ok)
	require.Len(t, variations, 2)
	assert.Equal(t, domain.VariationSoldOut, variations[1].Status)
	assert.True(t, decimal.NewFromInt(9).Equal(variations[0].DiscPrice))
}

func TestParseReader_RowErrors(t *testing.T) {
	seller := uuid.NewString()
	buf := workbook(t,
		[]interface{}{"not-a-uuid", "Ghost", "", "weight", "1 KG", 1000, "10", "", 1, ""},
		[]interface{}{"not-a-uuid", "Ghost", "", "weight", "2 KG", 2000, "20", "", 1, ""},
		[]interface{}{seller, "Milk", "Dairy", "quantity", "1 L", "", "abc", "", 1, ""},
		[]interface{}{seller, "Milk", "Dairy", "quantity", "2 L", "", "60", "", 1, ""},
		[]interface{}{seller, "Milk", "Dairy", "weight", "500 GM", 500, "30", "", 1, ""},
		[]interface{}{seller, "Salt", "", "litre", "1 KG", 1000, "10", "", 1, ""},
	)

	res, err := ParseReader(buf)

	require.NoError(t, err)
	require.Len(t, res.Drafts, 1)
	assert.Equal(t, "Milk", res.Drafts[0].Product.Name)
	assert.Equal(t, 1, res.Drafts[0].Product.Variants.Len())

	rows := make([]int, 0, len(res.Errors))
	for _, e := range res.Errors {
		rows = append(rows, e.Row)
	}
	assert.Equal(t, []int{2, 3, 4, 6, 7}, rows)
	assert.Contains(t, res.Errors[0].Error(), "row 2")
}

func TestParseReader_MissingColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &[]interface{}{"name", "price"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ParseReader(buf)

	assert.ErrorContains(t, err, fmt.Sprintf("%q", ColSellerID))
}

func TestParseEnabled(t *testing.T) {
	for _, raw := range []string{"", "TRUE", "yes", "1"} {
		v, err := parseEnabled(raw)
		assert.NoError(t, err)
		assert.True(t, v, raw)
	}
	v, err := parseEnabled("No")
	assert.NoError(t, err)
	assert.False(t, v)

	_, err = parseEnabled("maybe")
	assert.Error(t, err)
}
