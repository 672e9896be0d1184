package product

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/validator"
	"github.com/Pesokrava/grocery_catalog/internal/pricing"
)

// Cache defines the product detail cache used by the service
type Cache interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	InvalidateProduct(ctx context.Context, productID uuid.UUID) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// UpdateInput is a partial product update; nil fields are left unchanged.
// Variants replaces the whole set. WeightVariants or Variations without
// Variants are read under the stored selling unit.
type UpdateInput struct {
	Name           *string
	Description    *string
	Category       *string
	Variants       domain.Variants
	WeightVariants domain.WeightVariants
	Variations     domain.QuantityVariations
	CompareAtPrice *decimal.Decimal
	Publish        *bool
	// Version, when set, must match the stored version
	Version *int
}

// Service handles the product write path: validation, variant
// normalization, persistence, cache invalidation and events
type Service struct {
	repo      domain.ProductRepository
	cache     Cache
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService creates a new product service
func NewService(
	repo domain.ProductRepository,
	cache Cache,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    log,
	}
}

// Create validates, normalizes and stores a new product.
// Products without a status start as Pending moderation.
func (s *Service) Create(ctx context.Context, product *domain.Product) error {
	if product.Status == "" {
		product.Status = domain.ProductPending
	}

	if err := s.prepare(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.invalidate(ctx, product.ID)
	s.publishEvent(domain.ProductCreated, product)

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"seller_id":  product.SellerID,
		"price":      product.Price.String(),
		"stock":      product.Stock,
	}).Info("Product created successfully")

	return nil
}

// GetByID retrieves a product by ID, served from cache when possible
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if cached, err := s.cache.GetProduct(ctx, id); err == nil {
		s.logger.Debugf("Cache hit for product %s", id)
		return cached, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warnf("Failed to read product %s from cache: %v", id, err)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	if err := s.cache.SetProduct(ctx, product); err != nil {
		s.logger.Warnf("Failed to cache product %s: %v", id, err)
	}

	return product, nil
}

// List retrieves a paginated list of products, optionally for one seller
func (s *Service) List(ctx context.Context, sellerID *uuid.UUID, limit, offset int) ([]*domain.Product, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := domain.ProductFilter{Limit: limit, Offset: offset}
	if sellerID != nil {
		filter.SellerIDs = []uuid.UUID{*sellerID}
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count products", err)
		return nil, 0, err
	}

	return products, total, nil
}

// Update applies a partial update. Changing the variant set re-runs
// validation and normalization before the write; the previous
// compare-at price carries over so a zero mrp does not erase it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for update", err)
		}
		return nil, err
	}

	if in.Version != nil && *in.Version != product.Version {
		return nil, domain.ErrConflict
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}

	variants := in.Variants
	if variants == nil && (in.WeightVariants != nil || in.Variations != nil) {
		variants, err = variantsForUnit(product.SellingUnit(), in.WeightVariants, in.Variations)
		if err != nil {
			return nil, err
		}
	}
	if variants != nil {
		// the old arm's mrp must not leak into the new unit's discount
		if variants.SellingUnit() != product.SellingUnit() {
			product.CompareAtPrice = decimal.Zero
		}
		product.Variants = variants
	}
	if in.CompareAtPrice != nil {
		product.CompareAtPrice = *in.CompareAtPrice
	}
	if in.Publish != nil {
		product.Publish = *in.Publish
	}

	if err := s.prepare(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", err)
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	s.publishEvent(domain.ProductUpdated, product)

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"version":    product.Version,
		"price":      product.Price.String(),
		"stock":      product.Stock,
		"discount":   product.Discount,
	}).Info("Product updated successfully")

	return product, nil
}

// SetStatus moves a product through moderation (Active, Inactive, Pending, Rejected)
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProductStatus) (*domain.Product, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("invalid product status",
			domain.ValidationDetail{Field: "status", Message: "must be one of Active Inactive Pending Rejected"})
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for status change", err)
		}
		return nil, err
	}

	if product.Status == status {
		return product, nil
	}
	product.Status = status

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product status", err)
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	s.publishEvent(domain.ProductStatusChanged, product)

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"status":     product.Status,
	}).Info("Product status changed")

	return product, nil
}

// SetPublished toggles whether the seller exposes the product to customers
func (s *Service) SetPublished(ctx context.Context, id uuid.UUID, publish bool) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for publish toggle", err)
		}
		return nil, err
	}

	if product.Publish == publish {
		return product, nil
	}
	product.Publish = publish

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product publish flag", err)
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	s.publishEvent(domain.ProductUpdated, product)

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"publish":    product.Publish,
	}).Info("Product publish flag changed")

	return product, nil
}

// Delete soft-deletes a product
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for deletion", err)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	s.invalidate(ctx, id)
	s.publishEvent(domain.ProductDeleted, product)

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	return nil
}

// variantsForUnit reads a variant array under the stored selling unit.
// Sending only the other unit's array needs an explicit selling_unit.
func variantsForUnit(unit domain.SellingUnit, weight domain.WeightVariants, variations domain.QuantityVariations) (domain.Variants, error) {
	switch {
	case unit == "":
		return nil, domain.NewValidationError("invalid variants",
			domain.ValidationDetail{Field: "selling_unit", Message: "is required"})
	case unit == domain.SellingUnitWeight && weight == nil,
		unit == domain.SellingUnitQuantity && variations == nil:
		return nil, domain.NewValidationError("invalid variants",
			domain.ValidationDetail{Field: "selling_unit", Message: "is required to change the selling unit"})
	}
	return domain.NewVariants(unit, weight, variations)
}

// prepare runs write-boundary validation and then derives price fields.
// Nothing is persisted unless both succeed.
func (s *Service) prepare(product *domain.Product) error {
	if err := validator.Struct(product); err != nil {
		return err
	}

	if product.CompareAtPrice.IsNegative() {
		return domain.NewValidationError("invalid product",
			domain.ValidationDetail{Field: "compare_at_price", Message: "must not be negative"})
	}

	if err := pricing.Validate(product); err != nil {
		return err
	}

	pricing.Normalize(product)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		s.logger.Warnf("Failed to invalidate cache for product %s: %v", id, err)
	}
}

// publishEvent publishes a product event (non-blocking)
func (s *Service) publishEvent(eventType string, product *domain.Product) {
	event := domain.ProductEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: product.ID,
		SellerID:  product.SellerID,
		Product:   product,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for product %s", product.ID)
		return
	}

	// Publish in background to avoid blocking
	go func() {
		if err := s.publisher.Publish(context.Background(), domain.ProductEventsSubject, data); err != nil {
			s.logger.Errorf(err, "Failed to publish event for product %s", product.ID)
		}
	}()
}
