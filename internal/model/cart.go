package model

import "github.com/google/uuid"

// Cart status values. A cart is created active and transitions to completed
// exactly once, at successful checkout.
const (
	CartStatusActive    = "active"
	CartStatusCompleted = "completed"
)

// Cart is a user's shopping cart. Exactly one active cart exists per user;
// it is created lazily on first access.
type Cart struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     string     `json:"userId" db:"user_id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice" db:"total_price"`
	Status     string     `json:"status" db:"status"`
}

// CartItem is a single product line in a cart. UnitPrice is a snapshot of the
// product price at the moment the item was added; later catalogue price
// changes do not alter it.
type CartItem struct {
	ProductID string  `json:"productId" db:"product_id"`
	UnitPrice float64 `json:"unitPrice" db:"unit_price"`
	Quantity  int     `json:"quantity" db:"quantity"`

	// Product carries the full product record when the cart is read with
	// populate enabled. Display only; never used for pricing.
	Product *Product `json:"product,omitempty"`
}

// ItemTotal returns the cost of this line.
func (i CartItem) ItemTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// CartTotal sums the line totals of the given items. Mutations that remove or
// replace lines recompute the cart total through this rather than adjusting
// it incrementally.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.ItemTotal()
	}
	return total
}

// FindItem returns the cart line for productID, or nil if absent.
func (c *Cart) FindItem(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItemRequest is the payload for POST /api/cart/items and
// PUT /api/cart/items.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
