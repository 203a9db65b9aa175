package repository

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil if absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDForUpdate retrieves a product within the transaction, locking
	// its row until commit. Returns nil if absent.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*model.Product, error)

	// ApplySale decrements stock and increments sales_count by quantity
	// within the transaction.
	ApplySale(ctx context.Context, tx pgx.Tx, id string, quantity int) error

	// Stats aggregates catalogue-wide sales figures.
	Stats(ctx context.Context) (*model.SalesStats, error)
}

// CartRepository defines the interface for cart data access operations.
// Mutations run inside a caller-owned transaction so that the cart row stays
// locked for the whole read-validate-write sequence.
type CartRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// GetActive retrieves the user's active cart with its items, without
	// locking. When populate is true each item carries its full product
	// record. Returns nil if the user has no active cart.
	GetActive(ctx context.Context, userID string, populate bool) (*model.Cart, error)

	// GetActiveForUpdate retrieves the user's active cart within the
	// transaction, locking the cart row. Returns nil if absent.
	GetActiveForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*model.Cart, error)

	// Create inserts a new empty active cart for the user.
	Create(ctx context.Context, tx pgx.Tx, cart *model.Cart) error

	// InsertItem appends a new line to the cart.
	InsertItem(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, item model.CartItem) error

	// UpdateItemQuantity replaces the quantity of an existing line.
	UpdateItemQuantity(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, productID string, quantity int) error

	// DeleteItem removes a line from the cart.
	DeleteItem(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, productID string) error

	// ClearItems removes all lines from the cart.
	ClearItems(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error

	// UpdateTotal persists a recomputed cart total.
	UpdateTotal(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, total float64) error

	// MarkCompleted transitions the cart to its terminal completed status.
	MarkCompleted(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns nil
	// if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// ListByUser retrieves all orders placed by the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}
