package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/request"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/catalog"
)

// CatalogService is the customer-facing read path
type CatalogService interface {
	List(ctx context.Context, q catalog.Query) (*catalog.Listing, error)
	Detail(ctx context.Context, id uuid.UUID, location *domain.Location) (*catalog.ListItem, error)
	Home(ctx context.Context, location *domain.Location) (*catalog.HomeFeed, error)
}

// CatalogHandler serves customer listings annotated with availability
type CatalogHandler struct {
	service CatalogService
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/v1/catalog/products
// @Summary Browse products near a location
// @Description Lists visible products with is_available computed from the caller's location.
// @Description With require_location=true and no coordinates the list is empty and a message is returned.
// @Tags Catalog
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param category query string false "Category"
// @Param seller_id query string false "Seller ID (UUID)"
// @Param require_location query bool false "Only list products deliverable to the location" default(false)
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Listing"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /catalog/products [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	location, err := request.GetLocationQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sellerID, err := request.GetUUIDQuery(r, "seller_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid seller ID")
		return
	}

	policy := catalog.MarkUnavailable
	if request.GetBoolQuery(r, "require_location", false) {
		policy = catalog.RequireLocation
	}

	q := catalog.Query{
		Location: location,
		Category: r.URL.Query().Get("category"),
		SellerID: sellerID,
		Limit:    request.GetIntQuery(r, "limit", 0),
		Offset:   request.GetIntQuery(r, "offset", 0),
		Policy:   policy,
	}

	listing, err := h.service.List(r.Context(), q)
	if err != nil {
		handleError(w, h.logger, err, "Catalog")
		return
	}

	response.Success(w, listing)
}

// Detail handles GET /api/v1/catalog/products/:id
// @Summary Product detail with availability
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} map[string]interface{} "Product with is_available"
// @Failure 400 {object} map[string]string "Invalid product ID or coordinates"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /catalog/products/{id} [get]
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	location, err := request.GetLocationQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.service.Detail(r.Context(), id, location)
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Success(w, item)
}

// Home handles GET /api/v1/catalog/home
// @Summary Customer home feed
// @Description Nearby products, deals and categories computed from one seller lookup
// @Tags Catalog
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} map[string]interface{} "Home feed"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /catalog/home [get]
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	location, err := request.GetLocationQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	feed, err := h.service.Home(r.Context(), location)
	if err != nil {
		handleError(w, h.logger, err, "Catalog")
		return
	}

	response.Success(w, feed)
}
