package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ProductEventsSubject carries product lifecycle events
	ProductEventsSubject = "products.events"

	// SellerEventsSubject carries seller lifecycle events
	SellerEventsSubject = "sellers.events"
)

// Product event types
const (
	ProductCreated       = "product.created"
	ProductUpdated       = "product.updated"
	ProductStatusChanged = "product.status_changed"
	ProductDeleted       = "product.deleted"
)

// Seller event types
const (
	SellerCreated = "seller.created"
	SellerUpdated = "seller.updated"
	SellerDeleted = "seller.deleted"
)

// ProductEvent is published whenever a product is written
type ProductEvent struct {
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Product   *Product  `json:"product,omitempty"`
}

// SellerEvent is published whenever a seller is written
type SellerEvent struct {
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	SellerID  uuid.UUID `json:"seller_id"`
	Seller    *Seller   `json:"seller,omitempty"`
}
