package seller

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/geo"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/validator"
)

// Cache holds the located seller snapshot read by the geo filter
type Cache interface {
	GetLocatedSellers(ctx context.Context) ([]*domain.Seller, error)
	SetLocatedSellers(ctx context.Context, sellers []*domain.Seller) error
	InvalidateLocatedSellers(ctx context.Context) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Service manages sellers and their service areas
type Service struct {
	repo      domain.SellerRepository
	cache     Cache
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService creates a new seller service
func NewService(
	repo domain.SellerRepository,
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

// Create registers a new seller
func (s *Service) Create(ctx context.Context, seller *domain.Seller) error {
	if err := validateSeller(seller); err != nil {
		s.logger.Error("Seller validation failed", err)
		return err
	}

	if err := s.repo.Create(ctx, seller); err != nil {
		s.logger.Error("Failed to create seller", err)
		return err
	}

	s.invalidate(ctx)
	s.publishEvent(domain.SellerCreated, seller)

	s.logger.WithFields(map[string]interface{}{
		"seller_id": seller.ID,
		"located":   seller.Location != nil,
	}).Info("Seller created successfully")

	return nil
}

// GetByID retrieves a seller by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	seller, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Seller not found: %s", id)
		} else {
			s.logger.Error("Failed to get seller", err)
		}
		return nil, err
	}
	return seller, nil
}

// Update replaces name, location and service radius
func (s *Service) Update(ctx context.Context, seller *domain.Seller) error {
	if err := validateSeller(seller); err != nil {
		s.logger.Error("Seller validation failed", err)
		return err
	}

	if err := s.repo.Update(ctx, seller); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to update seller", err)
		}
		return err
	}

	s.invalidate(ctx)
	s.publishEvent(domain.SellerUpdated, seller)

	s.logger.WithFields(map[string]interface{}{
		"seller_id": seller.ID,
	}).Info("Seller updated successfully")

	return nil
}

// Delete soft-deletes a seller
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to delete seller", err)
		}
		return err
	}

	s.invalidate(ctx)
	s.publishEvent(domain.SellerDeleted, &domain.Seller{ID: id})

	s.logger.WithFields(map[string]interface{}{
		"seller_id": id,
	}).Info("Seller deleted successfully")

	return nil
}

// ListLocated returns sellers that have a service area. The result is
// served from the snapshot cache and rebuilt from the store on a miss.
func (s *Service) ListLocated(ctx context.Context) ([]*domain.Seller, error) {
	sellers, err := s.cache.GetLocatedSellers(ctx)
	if err == nil {
		return sellers, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warnf("Failed to read located sellers from cache: %v", err)
	}

	sellers, err = s.repo.ListLocated(ctx)
	if err != nil {
		s.logger.Error("Failed to list located sellers", err)
		return nil, err
	}

	if err := s.cache.SetLocatedSellers(ctx, sellers); err != nil {
		s.logger.Warnf("Failed to cache located sellers: %v", err)
	}

	return sellers, nil
}

func validateSeller(seller *domain.Seller) error {
	verr := domain.NewValidationError("invalid seller")

	if err := validator.Struct(seller); err != nil {
		if tagErr, ok := domain.AsValidationError(err); ok {
			verr.Details = append(verr.Details, tagErr.Details...)
		} else {
			return err
		}
	}

	if seller.Location != nil {
		if err := geo.ValidateLocation(*seller.Location); err != nil {
			verr.Add("location", err.Error())
		}
	}
	if seller.ServiceRadiusKm != nil && *seller.ServiceRadiusKm <= 0 {
		verr.Add("service_radius_km", "must be greater than 0")
	}

	if verr.HasDetails() {
		return verr
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateLocatedSellers(ctx); err != nil {
		s.logger.Warnf("Failed to invalidate located sellers cache: %v", err)
	}
}

// publishEvent publishes a seller event (non-blocking)
func (s *Service) publishEvent(eventType string, seller *domain.Seller) {
	event := domain.SellerEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		SellerID:  seller.ID,
		Seller:    seller,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for seller %s", seller.ID)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), domain.SellerEventsSubject, data); err != nil {
			s.logger.Errorf(err, "Failed to publish event for seller %s", seller.ID)
		}
	}()
}
