// Package importer reads bulk product uploads from spreadsheets.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

// Column headers, one row per variant
const (
	ColSellerID    = "seller_id"
	ColName        = "name"
	ColCategory    = "category"
	ColSellingUnit = "selling_unit"
	ColLabel       = "label_or_title"
	ColGrams       = "grams"
	ColPrice       = "price"
	ColMRP         = "mrp_or_disc_price"
	ColStock       = "stock"
	ColEnabled     = "enabled_or_status"
)

var requiredColumns = []string{ColSellerID, ColName, ColSellingUnit, ColLabel, ColPrice}

// Draft is one product assembled from consecutive rows
type Draft struct {
	Row     int
	Product *domain.Product
}

// RowError reports a row that could not be parsed. Row numbers are 1-based
// as shown by spreadsheet tools.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Result holds parsed drafts and the rows that were skipped
type Result struct {
	Drafts []Draft
	Errors []RowError
}

// ParseReader parses the first sheet of an xlsx workbook. Rows sharing
// seller_id and name with the row above are merged into one product.
func ParseReader(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	res := &Result{}
	var current *domain.Product
	var currentKey string
	var skipKey string

	for i, raw := range rows[1:] {
		rowNum := i + 2
		row := cols.row(raw)
		if row.empty() {
			continue
		}

		key := row.get(ColSellerID) + "\x00" + row.get(ColName)
		if key == skipKey {
			// the product's first row was rejected
			res.Errors = append(res.Errors, RowError{Row: rowNum, Err: fmt.Errorf("skipped: product started with an invalid row")})
			continue
		}
		skipKey = ""

		if current == nil || key != currentKey {
			draft, err := newDraft(row, rowNum)
			if err != nil {
				res.Errors = append(res.Errors, RowError{Row: rowNum, Err: err})
				skipKey = key
				current = nil
				currentKey = ""
				continue
			}
			res.Drafts = append(res.Drafts, *draft)
			current = draft.Product
			currentKey = key
		}

		if err := appendVariant(current, row); err != nil {
			res.Errors = append(res.Errors, RowError{Row: rowNum, Err: err})
		}
	}

	return res, nil
}

type columns map[string]int

func mapColumns(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing required column %q", c)
		}
	}
	return cols, nil
}

type sheetRow struct {
	cols columns
	raw  []string
}

func (c columns) row(raw []string) sheetRow {
	return sheetRow{cols: c, raw: raw}
}

func (r sheetRow) get(col string) string {
	idx, ok := r.cols[col]
	if !ok || idx >= len(r.raw) {
		return ""
	}
	return strings.TrimSpace(r.raw[idx])
}

func (r sheetRow) empty() bool {
	for _, v := range r.raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func newDraft(row sheetRow, rowNum int) (*Draft, error) {
	sellerID, err := uuid.Parse(row.get(ColSellerID))
	if err != nil {
		return nil, fmt.Errorf("invalid seller_id: %w", err)
	}

	name := row.get(ColName)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	unit := domain.SellingUnit(strings.ToLower(row.get(ColSellingUnit)))
	variants, err := domain.NewVariants(unit, nil, nil)
	if err != nil {
		return nil, err
	}

	return &Draft{
		Row: rowNum,
		Product: &domain.Product{
			SellerID: sellerID,
			Name:     name,
			Category: row.get(ColCategory),
			Variants: variants,
		},
	}, nil
}

func appendVariant(p *domain.Product, row sheetRow) error {
	unit := domain.SellingUnit(strings.ToLower(row.get(ColSellingUnit)))
	if unit != p.SellingUnit() {
		return fmt.Errorf("selling_unit %q differs from the product's first row (%s)", unit, p.SellingUnit())
	}

	price, err := parseDecimal(row.get(ColPrice), ColPrice, true)
	if err != nil {
		return err
	}
	second, err := parseDecimal(row.get(ColMRP), ColMRP, false)
	if err != nil {
		return err
	}
	stock, err := parseInt(row.get(ColStock), ColStock)
	if err != nil {
		return err
	}

	switch vs := p.Variants.(type) {
	case domain.WeightVariants:
		grams, err := parseInt(row.get(ColGrams), ColGrams)
		if err != nil {
			return err
		}
		enabled, err := parseEnabled(row.get(ColEnabled))
		if err != nil {
			return err
		}
		p.Variants = append(vs, domain.WeightVariant{
			Label:     row.get(ColLabel),
			Grams:     grams,
			Price:     price,
			MRP:       second,
			Stock:     stock,
			IsEnabled: enabled,
		})
	case domain.QuantityVariations:
		status, err := parseStatus(row.get(ColEnabled))
		if err != nil {
			return err
		}
		p.Variants = append(vs, domain.QuantityVariation{
			Title:     row.get(ColLabel),
			Price:     price,
			DiscPrice: second,
			Stock:     stock,
			Status:    status,
		})
	}

	return nil
}

func parseDecimal(raw, col string, required bool) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		if required {
			return decimal.Zero, fmt.Errorf("%s is required", col)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", col, raw)
	}
	return d, nil
}

func parseInt(raw, col string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", col, raw)
	}
	return n, nil
}

// parseEnabled treats a blank cell as enabled
func parseEnabled(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "true", "yes", "y", "1", "enabled":
		return true, nil
	case "false", "no", "n", "0", "disabled":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s %q", ColEnabled, raw)
}

// parseStatus treats a blank cell as Available and matches case-insensitively
func parseStatus(raw string) (domain.VariationStatus, error) {
	if raw == "" {
		return domain.VariationAvailable, nil
	}
	for _, s := range []domain.VariationStatus{domain.VariationAvailable, domain.VariationSoldOut, domain.VariationInStock} {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q", ColEnabled, raw)
}
