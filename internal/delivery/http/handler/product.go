package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/request"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/product"
)

// ProductService is the seller-facing product write path
type ProductService interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, sellerID *uuid.UUID, limit, offset int) ([]*domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, in product.UpdateInput) (*domain.Product, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ProductStatus) (*domain.Product, error)
	SetPublished(ctx context.Context, id uuid.UUID, publish bool) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service ProductService
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// VariantsRequest carries the variant set. Only the array matching
// selling_unit is read.
type VariantsRequest struct {
	SellingUnit    domain.SellingUnit        `json:"selling_unit"`
	WeightVariants domain.WeightVariants     `json:"weight_variants,omitempty"`
	Variations     domain.QuantityVariations `json:"variations,omitempty"`
}

func (v VariantsRequest) toDomain() (domain.Variants, error) {
	variants, err := domain.NewVariants(v.SellingUnit, v.WeightVariants, v.Variations)
	if err != nil {
		return nil, domain.NewValidationError("invalid variants",
			domain.ValidationDetail{Field: "selling_unit", Message: "must be weight or quantity"})
	}
	return variants, nil
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	VariantsRequest
	SellerID       uuid.UUID        `json:"seller_id"`
	Name           string           `json:"name"`
	Description    *string          `json:"description,omitempty"`
	Category       string           `json:"category"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	Publish        bool             `json:"publish"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name           *string                   `json:"name,omitempty"`
	Description    *string                   `json:"description,omitempty"`
	Category       *string                   `json:"category,omitempty"`
	SellingUnit    *domain.SellingUnit       `json:"selling_unit,omitempty"`
	WeightVariants domain.WeightVariants     `json:"weight_variants,omitempty"`
	Variations     domain.QuantityVariations `json:"variations,omitempty"`
	CompareAtPrice *decimal.Decimal          `json:"compare_at_price,omitempty"`
	Publish        *bool                     `json:"publish,omitempty"`
	Version        *int                      `json:"version,omitempty"`
}

// SetStatusRequest represents a moderation status change
type SetStatusRequest struct {
	Status domain.ProductStatus `json:"status"`
}

// SetPublishRequest represents a publish toggle
type SetPublishRequest struct {
	Publish bool `json:"publish"`
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a product with weight variants or quantity variations; price, mrp, stock and discount are derived
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product details"
// @Success 201 {object} map[string]interface{} "Product created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	variants, err := req.VariantsRequest.toDomain()
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	p := &domain.Product{
		SellerID:    req.SellerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Variants:    variants,
		Publish:     req.Publish,
	}
	if req.CompareAtPrice != nil {
		p.CompareAtPrice = *req.CompareAtPrice
	}

	if err := h.service.Create(r.Context(), p); err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Created(w, p)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Description Get a product including its variants and derived pricing
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Success(w, p)
}

// List handles GET /api/v1/products
// @Summary List products
// @Description Get a paginated list of products, optionally for one seller
// @Tags Products
// @Accept json
// @Produce json
// @Param seller_id query string false "Seller ID (UUID)"
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of products"
// @Failure 400 {object} map[string]string "Invalid seller ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	sellerID, err := request.GetUUIDQuery(r, "seller_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid seller ID")
		return
	}

	limit, offset := request.GetPaginationParams(r)

	products, total, err := h.service.List(r.Context(), sellerID, limit, offset)
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Paginated(w, products, total, limit, offset)
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a product
// @Description Partially update a product. A variant array replaces the whole set and re-derives pricing; selling_unit defaults to the stored one.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body UpdateProductRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Product updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Conflict - product was modified"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := product.UpdateInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		CompareAtPrice: req.CompareAtPrice,
		Publish:        req.Publish,
		Version:        req.Version,
	}
	if req.SellingUnit != nil {
		variants, err := VariantsRequest{
			SellingUnit:    *req.SellingUnit,
			WeightVariants: req.WeightVariants,
			Variations:     req.Variations,
		}.toDomain()
		if err != nil {
			handleError(w, h.logger, err, "Product")
			return
		}
		in.Variants = variants
	} else {
		in.WeightVariants = req.WeightVariants
		in.Variations = req.Variations
	}

	p, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Success(w, p)
}

// SetStatus handles PUT /api/v1/products/:id/status
// @Summary Change moderation status
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param status body SetStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Status changed"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id}/status [put]
func (h *ProductHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req SetStatusRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Success(w, p)
}

// SetPublished handles PUT /api/v1/products/:id/publish
// @Summary Publish or unpublish a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param publish body SetPublishRequest true "Publish flag"
// @Success 200 {object} map[string]interface{} "Publish flag changed"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id}/publish [put]
func (h *ProductHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req SetPublishRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.SetPublished(r.Context(), id, req.Publish)
	if err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.Success(w, p)
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Description Soft delete a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product deleted successfully"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err, "Product")
		return
	}

	response.NoContent(w)
}
