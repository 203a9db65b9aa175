package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
//
// One active cart per user is enforced by a partial unique index on
// carts(user_id) WHERE status = 'active'; at most one line per product is
// enforced by a unique index on cart_items(cart_id, product_id).
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *cartRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetActive retrieves the user's active cart with its items.
func (r *cartRepository) GetActive(ctx context.Context, userID string, populate bool) (*model.Cart, error) {
	cartQuery := `
		SELECT id, user_id, total_price, status
		FROM carts
		WHERE user_id = $1 AND status = 'active'
	`

	var cart model.Cart
	err := r.pool.QueryRow(ctx, cartQuery, userID).Scan(
		&cart.ID, &cart.UserID, &cart.TotalPrice, &cart.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query active cart")
		return nil, fmt.Errorf("failed to query active cart: %w", err)
	}

	items, err := r.loadItems(ctx, cart.ID, populate)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

// loadItems reads the cart's lines, optionally joined with product records.
func (r *cartRepository) loadItems(ctx context.Context, cartID uuid.UUID, populate bool) ([]model.CartItem, error) {
	var rows pgx.Rows
	var err error

	if populate {
		query := `
			SELECT ci.product_id, ci.unit_price, ci.quantity,
			       p.id, p.title, p.description, p.image, p.price, p.stock, p.sales_count
			FROM cart_items ci
			LEFT JOIN products p ON p.id = ci.product_id
			WHERE ci.cart_id = $1
			ORDER BY ci.added_at
		`
		rows, err = r.pool.Query(ctx, query, cartID)
	} else {
		query := `
			SELECT product_id, unit_price, quantity
			FROM cart_items
			WHERE cart_id = $1
			ORDER BY added_at
		`
		rows, err = r.pool.Query(ctx, query, cartID)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		if populate {
			var (
				pID, pTitle, pDescription, pImage *string
				pPrice                            *float64
				pStock, pSalesCount               *int
			)
			err = rows.Scan(
				&item.ProductID, &item.UnitPrice, &item.Quantity,
				&pID, &pTitle, &pDescription, &pImage, &pPrice, &pStock, &pSalesCount,
			)
			if err == nil && pID != nil {
				item.Product = &model.Product{
					ID:          *pID,
					Title:       *pTitle,
					Description: *pDescription,
					Image:       *pImage,
					Price:       *pPrice,
					Stock:       *pStock,
					SalesCount:  *pSalesCount,
				}
			}
		} else {
			err = rows.Scan(&item.ProductID, &item.UnitPrice, &item.Quantity)
		}
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// GetActiveForUpdate retrieves the user's active cart within the transaction,
// locking the cart row so concurrent mutations for the same user serialise.
func (r *cartRepository) GetActiveForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*model.Cart, error) {
	cartQuery := `
		SELECT id, user_id, total_price, status
		FROM carts
		WHERE user_id = $1 AND status = 'active'
		FOR UPDATE
	`

	var cart model.Cart
	err := tx.QueryRow(ctx, cartQuery, userID).Scan(
		&cart.ID, &cart.UserID, &cart.TotalPrice, &cart.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to lock active cart")
		return nil, fmt.Errorf("failed to lock active cart: %w", err)
	}

	itemsQuery := `
		SELECT product_id, unit_price, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at
	`

	rows, err := tx.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	cart.Items = []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ProductID, &item.UnitPrice, &item.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return &cart, nil
}

// Create inserts a new empty active cart for the user. A concurrent create
// for the same user is a no-op here; the caller re-reads the winning row.
func (r *cartRepository) Create(ctx context.Context, tx pgx.Tx, cart *model.Cart) error {
	query := `
		INSERT INTO carts (id, user_id, total_price, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) WHERE status = 'active' DO NOTHING
	`

	_, err := tx.Exec(ctx, query, cart.ID, cart.UserID, cart.TotalPrice, cart.Status)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cart.ID.String()).
			Str("user_id", cart.UserID).
			Msg("failed to create cart")
		return fmt.Errorf("failed to create cart: %w", err)
	}

	r.logger.Debug().
		Str("cart_id", cart.ID.String()).
		Str("user_id", cart.UserID).
		Msg("cart created")

	return nil
}

// InsertItem appends a new line to the cart.
func (r *cartRepository) InsertItem(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, item model.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, unit_price, quantity)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, cartID, item.ProductID, item.UnitPrice, item.Quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", item.ProductID).
			Msg("failed to insert cart item")
		return fmt.Errorf("failed to insert cart item: %w", err)
	}

	return nil
}

// UpdateItemQuantity replaces the quantity of an existing line.
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, productID string, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND product_id = $2
	`

	tag, err := tx.Exec(ctx, query, cartID, productID, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID).
			Msg("failed to update cart item quantity")
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update cart item quantity: no line for product %s", productID)
	}

	return nil
}

// DeleteItem removes a line from the cart.
func (r *cartRepository) DeleteItem(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, productID string) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`

	_, err := tx.Exec(ctx, query, cartID, productID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID).
			Msg("failed to delete cart item")
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return nil
}

// ClearItems removes all lines from the cart.
func (r *cartRepository) ClearItems(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1
	`

	_, err := tx.Exec(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to clear cart items")
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	return nil
}

// UpdateTotal persists a recomputed cart total.
func (r *cartRepository) UpdateTotal(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, total float64) error {
	query := `
		UPDATE carts
		SET total_price = $2
		WHERE id = $1
	`

	_, err := tx.Exec(ctx, query, cartID, total)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to update cart total")
		return fmt.Errorf("failed to update cart total: %w", err)
	}

	return nil
}

// MarkCompleted transitions the cart to its terminal completed status.
func (r *cartRepository) MarkCompleted(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	query := `
		UPDATE carts
		SET status = 'completed'
		WHERE id = $1 AND status = 'active'
	`

	tag, err := tx.Exec(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to complete cart")
		return fmt.Errorf("failed to complete cart: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to complete cart: cart %s is not active", cartID)
	}

	r.logger.Debug().Str("cart_id", cartID.String()).Msg("cart completed")

	return nil
}
