package seller

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

type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSellerRepository) ListLocated(ctx context.Context) ([]*domain.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Seller), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetLocatedSellers(ctx context.Context) ([]*domain.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Seller), args.Error(1)
}

func (m *MockCache) SetLocatedSellers(ctx context.Context, sellers []*domain.Seller) error {
	return m.Called(ctx, sellers).Error(0)
}

func (m *MockCache) InvalidateLocatedSellers(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	return m.Called(ctx, subject, data).Error(0)
}

func setup() (*Service, *MockSellerRepository, *MockCache) {
	repo := new(MockSellerRepository)
	cache := new(MockCache)
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, domain.SellerEventsSubject, mock.Anything).Return(nil).Maybe()
	return NewService(repo, cache, publisher, logger.New("test")), repo, cache
}

func located(name string, lat, lng, radiusKm float64) *domain.Seller {
	return &domain.Seller{
		Name:            name,
		Location:        &domain.Location{Lat: lat, Lng: lng},
		ServiceRadiusKm: &radiusKm,
	}
}

func TestService_Create_InvalidatesSnapshot(t *testing.T) {
	service, repo, cache := setup()
	seller := located("Fresh Mart", 12.97, 77.59, 5)

	repo.On("Create", mock.Anything, seller).Return(nil)
	cache.On("InvalidateLocatedSellers", mock.Anything).Return(nil)

	require.NoError(t, service.Create(context.Background(), seller))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_Create_WithoutLocation(t *testing.T) {
	service, repo, cache := setup()
	seller := &domain.Seller{Name: "Online Only"}

	repo.On("Create", mock.Anything, seller).Return(nil)
	cache.On("InvalidateLocatedSellers", mock.Anything).Return(errors.New("redis down"))

	assert.NoError(t, service.Create(context.Background(), seller))
}

func TestService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		seller *domain.Seller
		field  string
	}{
		{"missing name", located("", 12.9, 77.5, 3), "name"},
		{"latitude out of range", located("A", 91, 77.5, 3), "location"},
		{"longitude NaN", located("A", 12.9, math.NaN(), 3), "location"},
		{"zero radius", located("A", 12.9, 77.5, 0), "service_radius_km"},
		{"negative radius", located("A", 12.9, 77.5, -2), "service_radius_km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := setup()

			err := service.Create(context.Background(), tt.seller)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			verr, ok := domain.AsValidationError(err)
			require.True(t, ok)
			require.NotEmpty(t, verr.Details)
			assert.Equal(t, tt.field, verr.Details[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_NotFound(t *testing.T) {
	service, repo, cache := setup()
	seller := located("Fresh Mart", 12.97, 77.59, 5)
	seller.ID = uuid.New()

	repo.On("Update", mock.Anything, seller).Return(domain.ErrNotFound)

	err := service.Update(context.Background(), seller)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "InvalidateLocatedSellers", mock.Anything)
}

func TestService_Delete(t *testing.T) {
	service, repo, cache := setup()
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(nil)
	cache.On("InvalidateLocatedSellers", mock.Anything).Return(nil)

	require.NoError(t, service.Delete(context.Background(), id))
	cache.AssertExpectations(t)
}

func TestService_ListLocated_CacheHit(t *testing.T) {
	service, repo, cache := setup()
	sellers := []*domain.Seller{located("Fresh Mart", 12.97, 77.59, 5)}

	cache.On("GetLocatedSellers", mock.Anything).Return(sellers, nil)

	got, err := service.ListLocated(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sellers, got)
	repo.AssertNotCalled(t, "ListLocated", mock.Anything)
}

func TestService_ListLocated_CacheMissRebuilds(t *testing.T) {
	service, repo, cache := setup()
	sellers := []*domain.Seller{located("Fresh Mart", 12.97, 77.59, 5)}

	cache.On("GetLocatedSellers", mock.Anything).Return(nil, domain.ErrNotFound)
	repo.On("ListLocated", mock.Anything).Return(sellers, nil)
	cache.On("SetLocatedSellers", mock.Anything, sellers).Return(nil)

	got, err := service.ListLocated(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	cache.AssertExpectations(t)
}

func TestService_ListLocated_RepositoryError(t *testing.T) {
	service, repo, cache := setup()

	cache.On("GetLocatedSellers", mock.Anything).Return(nil, errors.New("redis down"))
	repo.On("ListLocated", mock.Anything).Return(nil, errors.New("db down"))

	_, err := service.ListLocated(context.Background())

	assert.Error(t, err)
	cache.AssertNotCalled(t, "SetLocatedSellers", mock.Anything, mock.Anything)
}
