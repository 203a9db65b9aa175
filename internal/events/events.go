package events

import (
	"context"

	"storefront/internal/model"
)

// Publisher emits domain events after they have been committed to storage.
type Publisher interface {
	// OrderCompleted publishes an event for a successfully checked-out order.
	OrderCompleted(ctx context.Context, order *model.Order) error

	// Close flushes buffered events and releases the underlying client.
	Close() error
}

// OrderCompletedEvent is the wire representation of a completed checkout.
type OrderCompletedEvent struct {
	OrderID    string  `json:"orderId"`
	UserID     string  `json:"userId"`
	TotalPrice float64 `json:"totalPrice"`
	ItemCount  int     `json:"itemCount"`
	PromoCode  *string `json:"promoCode,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}
