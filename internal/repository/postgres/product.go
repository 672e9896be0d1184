package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

const productColumns = `id, seller_id, name, description, category, selling_unit, variants,
		price, compare_at_price, stock, discount, status, publish, version,
		created_at, updated_at, deleted_at`

// productRow is the storage shape of a product; variants live in a JSONB envelope
type productRow struct {
	ID             uuid.UUID       `db:"id"`
	SellerID       uuid.UUID       `db:"seller_id"`
	Name           string          `db:"name"`
	Description    *string         `db:"description"`
	Category       string          `db:"category"`
	SellingUnit    string          `db:"selling_unit"`
	Variants       []byte          `db:"variants"`
	Price          decimal.Decimal `db:"price"`
	CompareAtPrice decimal.Decimal `db:"compare_at_price"`
	Stock          int             `db:"stock"`
	Discount       int             `db:"discount"`
	Status         string          `db:"status"`
	Publish        bool            `db:"publish"`
	Version        int             `db:"version"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

func (r *productRow) toDomain() (*domain.Product, error) {
	variants, err := domain.DecodeVariants(r.Variants)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", r.ID, err)
	}

	return &domain.Product{
		ID:             r.ID,
		SellerID:       r.SellerID,
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Variants:       variants,
		Price:          r.Price,
		CompareAtPrice: r.CompareAtPrice,
		Stock:          r.Stock,
		Discount:       r.Discount,
		Status:         domain.ProductStatus(r.Status),
		Publish:        r.Publish,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		DeletedAt:      r.DeletedAt,
	}, nil
}

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product. Derived fields must already be normalized.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	variants, err := domain.EncodeVariants(product.Variants)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO products (seller_id, name, description, category, selling_unit, variants,
			price, compare_at_price, stock, discount, status, publish, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, version, created_at, updated_at
	`

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	err = r.db.QueryRowxContext(
		ctx,
		query,
		product.SellerID,
		product.Name,
		product.Description,
		product.Category,
		string(product.SellingUnit()),
		variants,
		product.Price,
		product.CompareAtPrice,
		product.Stock,
		product.Discount,
		string(product.Status),
		product.Publish,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(
		&product.ID,
		&product.Version,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("%w: unknown seller %s", domain.ErrInvalidInput, product.SellerID)
		}
		return err
	}

	return nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`

	var row productRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain()
}

// List retrieves a filtered, paginated list of products
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	where, args := buildProductFilter(filter)

	orderBy := "created_at DESC"
	if filter.OrderBy == domain.OrderDiscount {
		orderBy = "discount DESC, created_at DESC"
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s
		FROM products
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, productColumns, where, orderBy, len(args)-1, len(args))

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Count returns the number of products matching the filter
func (r *ProductRepository) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	where, args := buildProductFilter(filter)
	query := `SELECT COUNT(*) FROM products ` + where

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}

	return count, nil
}

// Update updates an existing product; a stale version yields ErrConflict
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	variants, err := domain.EncodeVariants(product.Variants)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, selling_unit = $4, variants = $5,
			price = $6, compare_at_price = $7, stock = $8, discount = $9,
			status = $10, publish = $11, updated_at = $12, version = version + 1
		WHERE id = $13 AND deleted_at IS NULL AND version = $14
		RETURNING version, updated_at
	`

	product.UpdatedAt = time.Now()
	oldVersion := product.Version

	err = r.db.QueryRowxContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Category,
		string(product.SellingUnit()),
		variants,
		product.Price,
		product.CompareAtPrice,
		product.Stock,
		product.Discount,
		string(product.Status),
		product.Publish,
		product.UpdatedAt,
		product.ID,
		oldVersion,
	).Scan(&product.Version, &product.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

// Delete soft-deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET deleted_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func buildProductFilter(filter domain.ProductFilter) (string, []interface{}) {
	clauses := []string{"deleted_at IS NULL"}
	var args []interface{}

	if filter.VisibleOnly {
		clauses = append(clauses, "status = 'Active'", "publish = TRUE")
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}

	if filter.SellerIDs != nil {
		ids := make([]string, len(filter.SellerIDs))
		for i, id := range filter.SellerIDs {
			ids[i] = id.String()
		}
		args = append(args, pq.Array(ids))
		clauses = append(clauses, fmt.Sprintf("seller_id = ANY($%d::uuid[])", len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}
