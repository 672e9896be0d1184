package geo

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// MockSellerSource is a mock implementation of SellerSource
type MockSellerSource struct {
	mock.Mock
}

func (m *MockSellerSource) ListLocated(ctx context.Context) ([]*domain.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Seller), args.Error(1)
}

func radius(km float64) *float64 {
	return &km
}

func sellerAt(lat, lng float64, radiusKm *float64) *domain.Seller {
	return &domain.Seller{
		ID:              uuid.New(),
		Name:            "Fresh Mart",
		Location:        &domain.Location{Lat: lat, Lng: lng},
		ServiceRadiusKm: radiusKm,
	}
}

var (
	bangalore = domain.Location{Lat: 12.9716, Lng: 77.5946}
	mysore    = domain.Location{Lat: 12.2958, Lng: 76.6394}
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 0, Distance(bangalore, bangalore), 1e-9)

	// One degree of latitude is ~111.19 km on a 6371 km sphere
	assert.InDelta(t, 111.19, Distance(domain.Location{Lat: 0, Lng: 0}, domain.Location{Lat: 1, Lng: 0}), 0.01)

	d := Distance(bangalore, mysore)
	assert.InDelta(t, 128, d, 2)
	assert.InDelta(t, d, Distance(mysore, bangalore), 1e-9)
}

func TestValidateLocation(t *testing.T) {
	tests := []struct {
		name string
		loc  domain.Location
		ok   bool
	}{
		{"valid", bangalore, true},
		{"poles and antimeridian", domain.Location{Lat: -90, Lng: 180}, true},
		{"lat too large", domain.Location{Lat: 90.0001, Lng: 0}, false},
		{"lng too small", domain.Location{Lat: 0, Lng: -180.5}, false},
		{"lat NaN", domain.Location{Lat: math.NaN(), Lng: 0}, false},
		{"lng infinite", domain.Location{Lat: 0, Lng: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocation(tt.loc)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, domain.ErrInvalidCoordinates))
		})
	}
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("", "")
	assert.NoError(t, err)
	assert.Nil(t, loc)

	loc, err = ParseLocation(" 12.97 ", "77.59")
	require.NoError(t, err)
	assert.Equal(t, domain.Location{Lat: 12.97, Lng: 77.59}, *loc)

	for _, raw := range [][2]string{{"12.97", ""}, {"abc", "77"}, {"12", "xyz"}, {"NaN", "1"}, {"91", "0"}} {
		_, err := ParseLocation(raw[0], raw[1])
		assert.Truef(t, errors.Is(err, domain.ErrInvalidCoordinates), "lat=%q lng=%q", raw[0], raw[1])
	}
}

func TestWithinRange_BoundaryInclusive(t *testing.T) {
	d := Distance(bangalore, mysore)

	exact := sellerAt(bangalore.Lat, bangalore.Lng, radius(d))
	assert.True(t, WithinRange(exact, mysore))

	short := sellerAt(bangalore.Lat, bangalore.Lng, radius(d-1e-6))
	assert.False(t, WithinRange(short, mysore))
}

func TestWithinRange_MissingServiceArea(t *testing.T) {
	noRadius := sellerAt(bangalore.Lat, bangalore.Lng, nil)
	noLocation := &domain.Seller{ID: uuid.New(), ServiceRadiusKm: radius(50)}
	zeroRadius := sellerAt(bangalore.Lat, bangalore.Lng, radius(0))

	assert.False(t, WithinRange(noRadius, bangalore))
	assert.False(t, WithinRange(noLocation, bangalore))
	assert.False(t, WithinRange(zeroRadius, bangalore))
}

func TestFilter_SellersWithinRange(t *testing.T) {
	source := new(MockSellerSource)
	filter := NewFilter(source, logger.New("test"))

	near := sellerAt(12.98, 77.60, radius(5))
	wide := sellerAt(mysore.Lat, mysore.Lng, radius(200))
	far := sellerAt(mysore.Lat, mysore.Lng, radius(10))
	unlocated := &domain.Seller{ID: uuid.New(), ServiceRadiusKm: radius(1000)}

	source.On("ListLocated", mock.Anything).Return([]*domain.Seller{near, wide, far, unlocated}, nil)

	set, err := filter.SellersWithinRange(context.Background(), &bangalore)

	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(near.ID))
	assert.True(t, set.Contains(wide.ID))
	assert.False(t, set.Contains(far.ID))
	assert.False(t, set.Contains(unlocated.ID))
	source.AssertExpectations(t)
}

func TestFilter_NoLocationYieldsEmptySet(t *testing.T) {
	source := new(MockSellerSource)
	filter := NewFilter(source, logger.New("test"))

	set, err := filter.SellersWithinRange(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Equal(t, 0, set.Len())
	source.AssertNotCalled(t, "ListLocated", mock.Anything)
}

func TestFilter_SourceError(t *testing.T) {
	source := new(MockSellerSource)
	filter := NewFilter(source, logger.New("test"))

	source.On("ListLocated", mock.Anything).Return(nil, errors.New("connection refused"))

	set, err := filter.SellersWithinRange(context.Background(), &bangalore)

	assert.Error(t, err)
	assert.Nil(t, set)
}

func TestSellerSet(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	set := NewSellerSet(a, b, a)

	assert.Equal(t, 2, set.Len())
	assert.ElementsMatch(t, []uuid.UUID{a, b}, set.IDs())

	var empty SellerSet
	assert.False(t, empty.Contains(a))
	assert.NotNil(t, empty.IDs())
}
