package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/catalog"
)

func newCatalogHandler() (*CatalogHandler, *MockCatalogService) {
	svc := new(MockCatalogService)
	return NewCatalogHandler(svc, logger.New("test")), svc
}

func TestCatalogHandler_List_PassesQuery(t *testing.T) {
	handler, svc := newCatalogHandler()
	sellerID := uuid.New()

	svc.On("List", mock.Anything, mock.MatchedBy(func(q catalog.Query) bool {
		return q.Location != nil &&
			q.Location.Lat == 12.97 && q.Location.Lng == 77.59 &&
			q.Category == "Fruits" &&
			q.SellerID != nil && *q.SellerID == sellerID &&
			q.Policy == catalog.RequireLocation &&
			q.Limit == 5
	})).Return(&catalog.Listing{Items: []catalog.ListItem{}}, nil)

	url := "/api/v1/catalog/products?lat=12.97&lng=77.59&category=Fruits&require_location=true&limit=5&seller_id=" + sellerID.String()
	w := httptest.NewRecorder()

	handler.List(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCatalogHandler_List_LocationRequiredMessage(t *testing.T) {
	handler, svc := newCatalogHandler()

	svc.On("List", mock.Anything, mock.MatchedBy(func(q catalog.Query) bool {
		return q.Location == nil && q.Policy == catalog.RequireLocation
	})).Return(&catalog.Listing{
		Items:            []catalog.ListItem{},
		LocationRequired: true,
		Message:          catalog.LocationRequiredMessage,
	}, nil)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?require_location=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data catalog.Listing `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, catalog.LocationRequiredMessage, resp.Data.Message)
}

func TestCatalogHandler_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"latitude out of range", "lat=91&lng=10"},
		{"longitude out of range", "lat=10&lng=-181"},
		{"not a number", "lat=abc&lng=10"},
		{"NaN", "lat=NaN&lng=10"},
		{"missing longitude", "lat=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, svc := newCatalogHandler()

			w := httptest.NewRecorder()
			handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?"+tt.query, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)

			w = httptest.NewRecorder()
			handler.Home(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/home?"+tt.query, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)

			svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "Home", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogHandler_Detail(t *testing.T) {
	handler, svc := newCatalogHandler()
	id := uuid.New()
	location := &domain.Location{Lat: 12.97, Lng: 77.59}

	svc.On("Detail", mock.Anything, id, location).Return(&catalog.ListItem{
		Product:     &domain.Product{ID: id, Name: "Eggs"},
		IsAvailable: true,
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/x?lat=12.97&lng=77.59", nil), "id", id.String())
	w := httptest.NewRecorder()

	handler.Detail(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_available":true`)
}

func TestCatalogHandler_Detail_NotFound(t *testing.T) {
	handler, svc := newCatalogHandler()
	id := uuid.New()

	svc.On("Detail", mock.Anything, id, (*domain.Location)(nil)).Return(nil, domain.ErrNotFound)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
	w := httptest.NewRecorder()

	handler.Detail(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_Home(t *testing.T) {
	handler, svc := newCatalogHandler()

	svc.On("Home", mock.Anything, (*domain.Location)(nil)).Return(&catalog.HomeFeed{
		Nearby:           []catalog.ListItem{},
		Deals:            []catalog.ListItem{},
		Categories:       []string{},
		LocationRequired: true,
		Message:          catalog.LocationRequiredMessage,
	}, nil)

	w := httptest.NewRecorder()
	handler.Home(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/home", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"location_required":true`)
}
