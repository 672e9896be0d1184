package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/request"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// SellerService manages sellers and their service areas
type SellerService interface {
	Create(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
	Update(ctx context.Context, seller *domain.Seller) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SellerHandler handles HTTP requests for sellers
type SellerHandler struct {
	service SellerService
	logger  *logger.Logger
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(service SellerService, log *logger.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		logger:  log,
	}
}

// SellerRequest represents the request body for creating or replacing a seller
type SellerRequest struct {
	Name            string           `json:"name"`
	Location        *domain.Location `json:"location,omitempty"`
	ServiceRadiusKm *float64         `json:"service_radius_km,omitempty"`
}

// Create handles POST /api/v1/sellers
// @Summary Register a seller
// @Description Create a seller with an optional location and service radius in kilometres
// @Tags Sellers
// @Accept json
// @Produce json
// @Param seller body SellerRequest true "Seller details"
// @Success 201 {object} map[string]interface{} "Seller created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sellers [post]
func (h *SellerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SellerRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	seller := &domain.Seller{
		Name:            req.Name,
		Location:        req.Location,
		ServiceRadiusKm: req.ServiceRadiusKm,
	}

	if err := h.service.Create(r.Context(), seller); err != nil {
		handleError(w, h.logger, err, "Seller")
		return
	}

	response.Created(w, seller)
}

// GetByID handles GET /api/v1/sellers/:id
// @Summary Get a seller by ID
// @Tags Sellers
// @Produce json
// @Param id path string true "Seller ID (UUID)"
// @Success 200 {object} map[string]interface{} "Seller details"
// @Failure 400 {object} map[string]string "Invalid seller ID"
// @Failure 404 {object} map[string]string "Seller not found"
// @Router /sellers/{id} [get]
func (h *SellerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid seller ID")
		return
	}

	seller, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, "Seller")
		return
	}

	response.Success(w, seller)
}

// Update handles PUT /api/v1/sellers/:id
// @Summary Replace a seller
// @Description Replace name, location and service radius. Omitting location removes the service area.
// @Tags Sellers
// @Accept json
// @Produce json
// @Param id path string true "Seller ID (UUID)"
// @Param seller body SellerRequest true "Seller details"
// @Success 200 {object} map[string]interface{} "Seller updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]string "Seller not found"
// @Router /sellers/{id} [put]
func (h *SellerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid seller ID")
		return
	}

	var req SellerRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	seller := &domain.Seller{
		ID:              id,
		Name:            req.Name,
		Location:        req.Location,
		ServiceRadiusKm: req.ServiceRadiusKm,
	}

	if err := h.service.Update(r.Context(), seller); err != nil {
		handleError(w, h.logger, err, "Seller")
		return
	}

	response.Success(w, seller)
}

// Delete handles DELETE /api/v1/sellers/:id
// @Summary Delete a seller
// @Tags Sellers
// @Param id path string true "Seller ID (UUID)"
// @Success 204 "Seller deleted successfully"
// @Failure 400 {object} map[string]string "Invalid seller ID"
// @Failure 404 {object} map[string]string "Seller not found"
// @Router /sellers/{id} [delete]
func (h *SellerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid seller ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err, "Seller")
		return
	}

	response.NoContent(w)
}
