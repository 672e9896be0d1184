package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/geo"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// LocationRequiredMessage is returned when a location-gated listing is requested without coordinates
const LocationRequiredMessage = "Please enable location to see products available near you"

// AvailabilityPolicy decides what a listing shows when the caller has no location
type AvailabilityPolicy string

const (
	// MarkUnavailable lists every visible product and flags those outside range
	MarkUnavailable AvailabilityPolicy = "mark_unavailable"
	// RequireLocation lists only in-range products and nothing without a location
	RequireLocation AvailabilityPolicy = "require_location"
)

// SellerFilter resolves the sellers serving a point
type SellerFilter interface {
	SellersWithinRange(ctx context.Context, point *domain.Location) (geo.SellerSet, error)
}

// ProductReader loads a single product, typically through the detail cache
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// Query describes a customer listing request
type Query struct {
	Location *domain.Location
	Category string
	SellerID *uuid.UUID
	Limit    int
	Offset   int
	Policy   AvailabilityPolicy
}

// ListItem is a product annotated with availability for the caller
type ListItem struct {
	Product     *domain.Product `json:"product"`
	IsAvailable bool            `json:"is_available"`
}

// Listing is a page of annotated products
type Listing struct {
	Items            []ListItem `json:"items"`
	Total            int        `json:"total"`
	Limit            int        `json:"limit"`
	Offset           int        `json:"offset"`
	LocationRequired bool       `json:"location_required"`
	Message          string     `json:"message,omitempty"`
}

// HomeFeed groups the sections of the customer home screen
type HomeFeed struct {
	Nearby           []ListItem `json:"nearby"`
	Deals            []ListItem `json:"deals"`
	Categories       []string   `json:"categories"`
	LocationRequired bool       `json:"location_required"`
	Message          string     `json:"message,omitempty"`
}

// Options tunes page sizes
type Options struct {
	DefaultLimit    int
	HomeSectionSize int
}

// Service serves the customer-facing catalog
type Service struct {
	products domain.ProductRepository
	reader   ProductReader
	filter   SellerFilter
	opts     Options
	logger   *logger.Logger
}

// NewService creates a new catalog service
func NewService(
	products domain.ProductRepository,
	reader ProductReader,
	filter SellerFilter,
	opts Options,
	log *logger.Logger,
) *Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 20
	}
	if opts.HomeSectionSize <= 0 {
		opts.HomeSectionSize = 10
	}
	return &Service{
		products: products,
		reader:   reader,
		filter:   filter,
		opts:     opts,
		logger:   log,
	}
}

// List returns visible products for the caller. The seller set is computed
// once per call and reused for every item.
func (s *Service) List(ctx context.Context, q Query) (*Listing, error) {
	limit, offset := s.page(q.Limit, q.Offset)
	listing := &Listing{Items: []ListItem{}, Limit: limit, Offset: offset}

	if q.Policy == RequireLocation && q.Location == nil {
		listing.LocationRequired = true
		listing.Message = LocationRequiredMessage
		return listing, nil
	}

	inRange, err := s.filter.SellersWithinRange(ctx, q.Location)
	if err != nil {
		s.logger.Error("Failed to resolve sellers in range", err)
		return nil, err
	}

	filter := domain.ProductFilter{
		Category:    q.Category,
		VisibleOnly: true,
		OrderBy:     domain.OrderNewest,
		Limit:       limit,
		Offset:      offset,
	}
	if q.SellerID != nil {
		filter.SellerIDs = []uuid.UUID{*q.SellerID}
	}
	if q.Policy == RequireLocation {
		filter.SellerIDs = restrict(filter.SellerIDs, inRange)
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list catalog products", err)
		return nil, err
	}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count catalog products", err)
		return nil, err
	}

	listing.Items = annotate(products, inRange)
	listing.Total = total
	listing.LocationRequired = q.Location == nil

	return listing, nil
}

// Detail returns one visible product with its availability for the caller
func (s *Service) Detail(ctx context.Context, id uuid.UUID, location *domain.Location) (*ListItem, error) {
	product, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Visible() {
		return nil, domain.ErrNotFound
	}

	inRange, err := s.filter.SellersWithinRange(ctx, location)
	if err != nil {
		s.logger.Error("Failed to resolve sellers in range", err)
		return nil, err
	}

	return &ListItem{Product: product, IsAvailable: inRange.Contains(product.SellerID)}, nil
}

// Home assembles the home feed from a single seller set lookup
func (s *Service) Home(ctx context.Context, location *domain.Location) (*HomeFeed, error) {
	feed := &HomeFeed{
		Nearby:     []ListItem{},
		Deals:      []ListItem{},
		Categories: []string{},
	}

	inRange, err := s.filter.SellersWithinRange(ctx, location)
	if err != nil {
		s.logger.Error("Failed to resolve sellers in range", err)
		return nil, err
	}

	if location == nil {
		feed.LocationRequired = true
		feed.Message = LocationRequiredMessage
	} else if inRange.Len() > 0 {
		nearby, err := s.products.List(ctx, domain.ProductFilter{
			SellerIDs:   inRange.IDs(),
			VisibleOnly: true,
			OrderBy:     domain.OrderNewest,
			Limit:       s.opts.HomeSectionSize,
		})
		if err != nil {
			s.logger.Error("Failed to load nearby products", err)
			return nil, err
		}
		feed.Nearby = annotate(nearby, inRange)
		feed.Categories = categories(nearby)
	}

	deals, err := s.products.List(ctx, domain.ProductFilter{
		VisibleOnly: true,
		OrderBy:     domain.OrderDiscount,
		Limit:       s.opts.HomeSectionSize,
	})
	if err != nil {
		s.logger.Error("Failed to load deals", err)
		return nil, err
	}
	feed.Deals = annotate(withDiscount(deals), inRange)

	s.logger.WithFields(map[string]interface{}{
		"sellers_in_range": inRange.Len(),
		"nearby":           len(feed.Nearby),
		"deals":            len(feed.Deals),
	}).Debug("Home feed assembled")

	return feed, nil
}

func (s *Service) page(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = s.opts.DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// restrict narrows requested sellers to those in range. The result is
// never nil so an empty set matches no products.
func restrict(requested []uuid.UUID, inRange geo.SellerSet) []uuid.UUID {
	if requested == nil {
		return inRange.IDs()
	}
	out := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if inRange.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

func annotate(products []*domain.Product, inRange geo.SellerSet) []ListItem {
	items := make([]ListItem, 0, len(products))
	for _, p := range products {
		items = append(items, ListItem{Product: p, IsAvailable: inRange.Contains(p.SellerID)})
	}
	return items
}

func withDiscount(products []*domain.Product) []*domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if p.Discount > 0 {
			out = append(out, p)
		}
	}
	return out
}

func categories(products []*domain.Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
