// Package geo answers which sellers can deliver to a customer location.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by Distance
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between a and b
// using the haversine formula.
func Distance(a, b domain.Location) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ValidateLocation rejects NaN, infinite and out-of-range coordinates
func ValidateLocation(loc domain.Location) error {
	switch {
	case math.IsNaN(loc.Lat) || math.IsInf(loc.Lat, 0):
		return fmt.Errorf("%w: latitude is not a finite number", domain.ErrInvalidCoordinates)
	case math.IsNaN(loc.Lng) || math.IsInf(loc.Lng, 0):
		return fmt.Errorf("%w: longitude is not a finite number", domain.ErrInvalidCoordinates)
	case math.Abs(loc.Lat) > 90:
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", domain.ErrInvalidCoordinates, loc.Lat)
	case math.Abs(loc.Lng) > 180:
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", domain.ErrInvalidCoordinates, loc.Lng)
	}
	return nil
}

// ParseLocation builds a validated location from raw query values.
// Both values empty means no location was provided and yields (nil, nil).
func ParseLocation(latRaw, lngRaw string) (*domain.Location, error) {
	latRaw = strings.TrimSpace(latRaw)
	lngRaw = strings.TrimSpace(lngRaw)

	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return nil, fmt.Errorf("%w: both lat and lng are required", domain.ErrInvalidCoordinates)
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lat: %v", domain.ErrInvalidCoordinates, err)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lng: %v", domain.ErrInvalidCoordinates, err)
	}

	loc := domain.Location{Lat: lat, Lng: lng}
	if err := ValidateLocation(loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// WithinRange reports whether point lies inside the seller's service area.
// The boundary is inclusive. Sellers without a location or radius never match.
func WithinRange(seller *domain.Seller, point domain.Location) bool {
	centre, radiusKm, ok := seller.ServiceArea()
	if !ok || radiusKm <= 0 {
		return false
	}
	return Distance(centre, point) <= radiusKm
}
