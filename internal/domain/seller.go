package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Location is a WGS84 coordinate pair in degrees
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Seller owns products and delivers within ServiceRadiusKm of Location.
// A seller missing either field has no service area.
type Seller struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name" validate:"required,min=1,max=255"`
	Location        *Location  `json:"location,omitempty"`
	ServiceRadiusKm *float64   `json:"service_radius_km,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// ServiceArea returns the seller's centre and radius, and false when either is missing
func (s *Seller) ServiceArea() (Location, float64, bool) {
	if s.Location == nil || s.ServiceRadiusKm == nil {
		return Location{}, 0, false
	}
	return *s.Location, *s.ServiceRadiusKm, true
}

// SellerRepository defines the interface for seller data access
type SellerRepository interface {
	// Create creates a new seller
	Create(ctx context.Context, seller *Seller) error

	// GetByID retrieves a seller by ID (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*Seller, error)

	// Update updates name, location and service radius
	Update(ctx context.Context, seller *Seller) error

	// Delete soft-deletes a seller
	Delete(ctx context.Context, id uuid.UUID) error

	// ListLocated returns every seller with both a location and a service radius
	ListLocated(ctx context.Context) ([]*Seller, error)
}
