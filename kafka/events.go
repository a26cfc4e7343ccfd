package kafka

import "time"

// ProductEvent describes a catalog mutation performed by an admin
type ProductEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// CheckoutLine identifies one purchased cart line
type CheckoutLine struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	VariantID string `json:"variant_id"`
}

// CheckoutCompletedEvent is emitted when a payment provider confirms an
// order; the cart service consumes it to mark the lines purchased.
type CheckoutCompletedEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	UserID    uint           `json:"user_id"`
	Lines     []CheckoutLine `json:"lines"`
	Timestamp time.Time      `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated    = "catalog.product.created"
	EventTypeProductUpdated    = "catalog.product.updated"
	EventTypeProductDeleted    = "catalog.product.deleted"
	EventTypeCheckoutCompleted = "checkout.completed"
)

// Kafka topics
const (
	TopicCatalogEvents     = "catalog-events"
	TopicCheckoutCompleted = "checkout-completed"
)
