package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

const sellerColumns = `id, name, latitude, longitude, service_radius_km, created_at, updated_at, deleted_at`

type sellerRow struct {
	ID              uuid.UUID       `db:"id"`
	Name            string          `db:"name"`
	Latitude        sql.NullFloat64 `db:"latitude"`
	Longitude       sql.NullFloat64 `db:"longitude"`
	ServiceRadiusKm sql.NullFloat64 `db:"service_radius_km"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	DeletedAt       *time.Time      `db:"deleted_at"`
}

func (r *sellerRow) toDomain() *domain.Seller {
	s := &domain.Seller{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
	if r.Latitude.Valid && r.Longitude.Valid {
		s.Location = &domain.Location{Lat: r.Latitude.Float64, Lng: r.Longitude.Float64}
	}
	if r.ServiceRadiusKm.Valid {
		radius := r.ServiceRadiusKm.Float64
		s.ServiceRadiusKm = &radius
	}
	return s
}

// locationArgs splits an optional location into nullable columns
func locationArgs(s *domain.Seller) (lat, lng, radius sql.NullFloat64) {
	if s.Location != nil {
		lat = sql.NullFloat64{Float64: s.Location.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: s.Location.Lng, Valid: true}
	}
	if s.ServiceRadiusKm != nil {
		radius = sql.NullFloat64{Float64: *s.ServiceRadiusKm, Valid: true}
	}
	return lat, lng, radius
}

// SellerRepository implements domain.SellerRepository for PostgreSQL
type SellerRepository struct {
	db *sqlx.DB
}

// NewSellerRepository creates a new PostgreSQL seller repository
func NewSellerRepository(db *sqlx.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// Create creates a new seller
func (r *SellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	query := `
		INSERT INTO sellers (name, latitude, longitude, service_radius_km, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	seller.CreatedAt = now
	seller.UpdatedAt = now
	lat, lng, radius := locationArgs(seller)

	return r.db.QueryRowxContext(
		ctx,
		query,
		seller.Name,
		lat,
		lng,
		radius,
		seller.CreatedAt,
		seller.UpdatedAt,
	).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
}

// GetByID retrieves a seller by ID
func (r *SellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + `
		FROM sellers
		WHERE id = $1 AND deleted_at IS NULL
	`

	var row sellerRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain(), nil
}

// Update updates name, location and service radius
func (r *SellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	query := `
		UPDATE sellers
		SET name = $1, latitude = $2, longitude = $3, service_radius_km = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`

	seller.UpdatedAt = time.Now()
	lat, lng, radius := locationArgs(seller)

	result, err := r.db.ExecContext(ctx, query, seller.Name, lat, lng, radius, seller.UpdatedAt, seller.ID)
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

// Delete soft-deletes a seller
func (r *SellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sellers
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

// ListLocated returns every live seller with a complete service area
func (r *SellerRepository) ListLocated(ctx context.Context) ([]*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + `
		FROM sellers
		WHERE deleted_at IS NULL
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL
			AND service_radius_km IS NOT NULL
	`

	var rows []sellerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	sellers := make([]*domain.Seller, 0, len(rows))
	for i := range rows {
		sellers = append(sellers, rows[i].toDomain())
	}

	return sellers, nil
}
