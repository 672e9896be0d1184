package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/pricing"
)

// CacheInvalidator drops stale product detail entries
type CacheInvalidator interface {
	InvalidateProduct(ctx context.Context, productID uuid.UUID) error
}

type pricingRow struct {
	Variants       []byte          `db:"variants"`
	Price          decimal.Decimal `db:"price"`
	CompareAtPrice decimal.Decimal `db:"compare_at_price"`
	Stock          int             `db:"stock"`
	Discount       int             `db:"discount"`
	Version        int             `db:"version"`
}

// Reconciler re-derives a product's price, compare-at price, stock and
// discount from its stored variants and repairs the row when they drifted
type Reconciler struct {
	db     *sqlx.DB
	cache  CacheInvalidator
	logger *logger.Logger
}

// NewReconciler creates a new pricing reconciler
func NewReconciler(db *sqlx.DB, cache CacheInvalidator, logger *logger.Logger) *Reconciler {
	return &Reconciler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Reconcile loads the product, normalizes it and writes back only on drift.
// It reports whether the row was changed. A missing or deleted product is not an error.
func (r *Reconciler) Reconcile(ctx context.Context, productID uuid.UUID) (bool, error) {
	var row pricingRow
	query := `SELECT variants, price, compare_at_price, stock, discount, version
		FROM products WHERE id = $1 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &row, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.WithFields(map[string]any{
				"product_id": productID.String(),
			}).Info("Product not found or deleted, skipping reconcile")
			return false, nil
		}
		return false, fmt.Errorf("failed to load product pricing: %w", err)
	}

	variants, err := domain.DecodeVariants(row.Variants)
	if err != nil {
		return false, fmt.Errorf("product %s: %w", productID, err)
	}

	p := &domain.Product{
		ID:             productID,
		Variants:       variants,
		Price:          row.Price,
		CompareAtPrice: row.CompareAtPrice,
		Stock:          row.Stock,
		Discount:       row.Discount,
	}
	pricing.Normalize(p)

	if !drifted(row, p) {
		r.logger.WithFields(map[string]any{
			"product_id": productID.String(),
		}).Debug("Product pricing already consistent")
		return false, nil
	}

	update := `UPDATE products
		SET price = $1, compare_at_price = $2, stock = $3, discount = $4,
			updated_at = $5, version = version + 1
		WHERE id = $6 AND version = $7 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, update,
		p.Price, p.CompareAtPrice, p.Stock, p.Discount, time.Now(), productID, row.Version)
	if err != nil {
		return false, fmt.Errorf("failed to update product pricing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	// A concurrent write bumped the version; its own event triggers another pass
	if rowsAffected == 0 {
		r.logger.WithFields(map[string]any{
			"product_id": productID.String(),
			"version":    row.Version,
		}).Info("Product changed during reconcile, skipping write")
		return false, nil
	}

	if r.cache != nil {
		if err := r.cache.InvalidateProduct(ctx, productID); err != nil {
			r.logger.Warnf("Failed to invalidate cache for product %s: %v", productID, err)
		}
	}

	r.logger.WithFields(map[string]any{
		"product_id": productID.String(),
		"price":      p.Price.String(),
		"stock":      p.Stock,
		"discount":   p.Discount,
	}).Info("Reconciled product pricing")

	return true, nil
}

func drifted(row pricingRow, p *domain.Product) bool {
	return !row.Price.Equal(p.Price) ||
		!row.CompareAtPrice.Equal(p.CompareAtPrice) ||
		row.Stock != p.Stock ||
		row.Discount != p.Discount
}
