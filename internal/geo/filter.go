package geo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// SellerSource supplies the sellers that have a registered service area
type SellerSource interface {
	ListLocated(ctx context.Context) ([]*domain.Seller, error)
}

// SellerSet is an immutable set of seller IDs
type SellerSet map[uuid.UUID]struct{}

// NewSellerSet builds a set from the given IDs
func NewSellerSet(ids ...uuid.UUID) SellerSet {
	set := make(SellerSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s SellerSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of sellers in the set
func (s SellerSet) Len() int {
	return len(s)
}

// IDs returns the members as a non-nil slice in unspecified order
func (s SellerSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// Filter resolves a customer location to the sellers able to serve it.
// It holds no mutable state and is safe for concurrent use.
type Filter struct {
	source SellerSource
	logger *logger.Logger
}

// NewFilter creates a new geo-availability filter
func NewFilter(source SellerSource, log *logger.Logger) *Filter {
	return &Filter{
		source: source,
		logger: log,
	}
}

// SellersWithinRange returns the IDs of sellers whose service radius covers point.
// A nil point yields an empty set without consulting the source; callers must
// validate coordinates beforehand.
func (f *Filter) SellersWithinRange(ctx context.Context, point *domain.Location) (SellerSet, error) {
	if point == nil {
		return SellerSet{}, nil
	}

	sellers, err := f.source.ListLocated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seller service areas: %w", err)
	}

	set := make(SellerSet)
	for _, s := range sellers {
		if WithinRange(s, *point) {
			set[s.ID] = struct{}{}
		}
	}

	f.logger.Debugf("Geo filter matched %d of %d located sellers", len(set), len(sellers))

	return set, nil
}
