package postgres

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

var sellerRowColumns = []string{
	"id", "name", "latitude", "longitude", "service_radius_km", "created_at", "updated_at", "deleted_at",
}

func TestSellerRepository_Create_WithoutLocation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSellerRepository(db)

	seller := &domain.Seller{Name: "Corner Store"}
	newID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO sellers").
		WithArgs("Corner Store", nil, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(newID.String(), now, now))

	err := repo.Create(context.Background(), seller)

	require.NoError(t, err)
	assert.Equal(t, newID, seller.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_ListLocated(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSellerRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM sellers WHERE deleted_at IS NULL AND latitude IS NOT NULL").
		WillReturnRows(sqlmock.NewRows(sellerRowColumns).
			AddRow(id.String(), "Fresh Mart", 12.97, 77.59, 8.5, now, now, nil))

	sellers, err := repo.ListLocated(context.Background())

	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, id, sellers[0].ID)
	assert.Equal(t, &domain.Location{Lat: 12.97, Lng: 77.59}, sellers[0].Location)
	require.NotNil(t, sellers[0].ServiceRadiusKm)
	assert.Equal(t, 8.5, *sellers[0].ServiceRadiusKm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_GetByID_PartialLocation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSellerRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM sellers").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(sellerRowColumns).
			AddRow(id.String(), "Fresh Mart", 12.97, nil, 8.5, now, now, nil))

	seller, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, seller.Location)
	_, _, ok := seller.ServiceArea()
	assert.False(t, ok)
}

func TestSellerRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSellerRepository(db)

	radius := 12.0
	seller := &domain.Seller{
		ID:              uuid.New(),
		Name:            "Fresh Mart",
		Location:        &domain.Location{Lat: 12.9, Lng: 77.6},
		ServiceRadiusKm: &radius,
	}

	mock.ExpectExec("UPDATE sellers").
		WithArgs("Fresh Mart", 12.9, 77.6, 12.0, sqlmock.AnyArg(), seller.ID).
		WillReturnResult(driver.RowsAffected(1))

	require.NoError(t, repo.Update(context.Background(), seller))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSellerRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE sellers").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotFound)
}
