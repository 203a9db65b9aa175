package model

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable record of a completed purchase. Items are
// denormalized snapshots so later catalogue edits never alter history.
type Order struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	UserID     string      `json:"userId" db:"user_id"`
	Items      []OrderItem `json:"orderItems"`
	TotalPrice float64     `json:"totalPrice" db:"total_price"`
	Address    string      `json:"address" db:"address"`
	PromoCode  *string     `json:"promoCode,omitempty" db:"promo_code"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem snapshots a product at purchase time. The unit price comes from
// the cart line, not the live product.
type OrderItem struct {
	ID           uuid.UUID `json:"-" db:"id"`
	OrderID      uuid.UUID `json:"-" db:"order_id"`
	ProductTitle string    `json:"productTitle" db:"product_title"`
	Image        string    `json:"image" db:"image"`
	UnitPrice    float64   `json:"unitPrice" db:"unit_price"`
	Quantity     int       `json:"quantity" db:"quantity"`
}

// CheckoutRequest is the payload for POST /api/cart/checkout.
type CheckoutRequest struct {
	Address   string  `json:"address"`
	PromoCode *string `json:"promoCode,omitempty"`
}
