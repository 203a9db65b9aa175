package service

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// CartService defines operations on a user's active cart.
//
// Business-rule violations (duplicate line, missing line, unknown product,
// insufficient stock) are returned as *model.DomainError values; only
// unexpected storage failures surface as plain errors.
type CartService interface {
	// GetActiveCart returns the user's active cart, creating an empty one
	// if none exists. populate expands each line with its product record.
	GetActiveCart(ctx context.Context, userID string, populate bool) (*model.Cart, error)

	// AddItem appends a new line for the product, snapshotting its current
	// price. Rejects duplicates and quantities above current stock.
	AddItem(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error)

	// UpdateItem replaces the quantity of an existing line, revalidating
	// against current stock, and recomputes the cart total from scratch.
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error)

	// DeleteItem removes a line and recomputes the cart total.
	DeleteItem(ctx context.Context, userID, productID string) (*model.Cart, error)

	// ClearCart empties the cart and zeroes its total. Idempotent.
	ClearCart(ctx context.Context, userID string) (*model.Cart, error)
}

// OrderService defines checkout and order retrieval operations.
type OrderService interface {
	// Checkout converts the user's active cart into an immutable order,
	// depleting stock and recording sales, in a single transaction.
	// promoCode is optional; when present it must pass validation.
	Checkout(ctx context.Context, userID, address string, promoCode *string) (*model.Order, error)

	// GetByID retrieves an order with its items. Returns nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// ListByUser retrieves the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}

// ProductService defines operations for catalogue reads.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Stats aggregates catalogue-wide sales figures.
	Stats(ctx context.Context) (*model.SalesStats, error)
}
