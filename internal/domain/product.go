package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the moderation state of a product
type ProductStatus string

const (
	ProductActive   ProductStatus = "Active"
	ProductInactive ProductStatus = "Inactive"
	ProductPending  ProductStatus = "Pending"
	ProductRejected ProductStatus = "Rejected"
)

// Valid reports whether the status is known
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductPending, ProductRejected:
		return true
	}
	return false
}

// Product represents a catalog item owned by exactly one seller.
// Price, CompareAtPrice, Stock and Discount are derived from Variants
// and must not be set directly once variants exist.
type Product struct {
	ID             uuid.UUID       `json:"id"`
	SellerID       uuid.UUID       `json:"seller_id" validate:"required"`
	Name           string          `json:"name" validate:"required,min=1,max=255"`
	Description    *string         `json:"description,omitempty"`
	Category       string          `json:"category" validate:"max=100"`
	Variants       Variants        `json:"-"`
	Price          decimal.Decimal `json:"price"`
	CompareAtPrice decimal.Decimal `json:"compare_at_price"`
	Stock          int             `json:"stock"`
	Discount       int             `json:"discount"`
	Status         ProductStatus   `json:"status" validate:"required,oneof=Active Inactive Pending Rejected"`
	Publish        bool            `json:"publish"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
}

// SellingUnit returns the unit implied by the variant set, or "" when unset
func (p *Product) SellingUnit() SellingUnit {
	if p.Variants == nil {
		return ""
	}
	return p.Variants.SellingUnit()
}

// Visible reports whether customers may see the product at all.
// Status and publish gate visibility independently of stock.
func (p *Product) Visible() bool {
	return p.Status == ProductActive && p.Publish
}

// MarshalJSON flattens the variant set back into its envelope fields and
// exposes CompareAtPrice under its "mrp" alias as well.
func (p Product) MarshalJSON() ([]byte, error) {
	type productAlias Product

	out := struct {
		productAlias
		MRP            decimal.Decimal    `json:"mrp"`
		SellingUnit    SellingUnit        `json:"selling_unit,omitempty"`
		WeightVariants WeightVariants     `json:"weight_variants,omitempty"`
		Variations     QuantityVariations `json:"variations,omitempty"`
	}{
		productAlias: productAlias(p),
		MRP:          p.CompareAtPrice,
	}

	switch vs := p.Variants.(type) {
	case WeightVariants:
		out.SellingUnit = SellingUnitWeight
		out.WeightVariants = vs
	case QuantityVariations:
		out.SellingUnit = SellingUnitQuantity
		out.Variations = vs
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores the variant set from its envelope fields
func (p *Product) UnmarshalJSON(data []byte) error {
	type productAlias Product

	aux := struct {
		*productAlias
		SellingUnit    SellingUnit        `json:"selling_unit"`
		WeightVariants WeightVariants     `json:"weight_variants"`
		Variations     QuantityVariations `json:"variations"`
	}{
		productAlias: (*productAlias)(p),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.SellingUnit == "" {
		p.Variants = nil
		return nil
	}

	variants, err := NewVariants(aux.SellingUnit, aux.WeightVariants, aux.Variations)
	if err != nil {
		return err
	}
	p.Variants = variants
	return nil
}

// ProductOrder selects the ordering of product listings
type ProductOrder int

const (
	// OrderNewest sorts by creation time, newest first
	OrderNewest ProductOrder = iota
	// OrderDiscount sorts by discount percent, highest first
	OrderDiscount
)

// ProductFilter narrows product listings.
// A nil SellerIDs means "any seller"; an empty non-nil slice matches nothing.
type ProductFilter struct {
	SellerIDs   []uuid.UUID
	Category    string
	VisibleOnly bool
	OrderBy     ProductOrder
	Limit       int
	Offset      int
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by ID (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List retrieves a filtered, paginated list of products (excludes soft-deleted)
	List(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// Count returns the number of products matching the filter, ignoring pagination
	Count(ctx context.Context, filter ProductFilter) (int, error)

	// Update updates an existing product with optimistic locking
	Update(ctx context.Context, product *Product) error

	// Delete soft-deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}
