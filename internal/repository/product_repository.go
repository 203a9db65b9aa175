package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves all products with pagination support.
func (r *productRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT id, title, description, image, price, stock, sales_count
		FROM products
		ORDER BY title
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Price, &p.Stock, &p.SalesCount)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT id, title, description, image, price, stock, sales_count
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.Price, &p.Stock, &p.SalesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetByIDForUpdate retrieves a product within the transaction, locking its row.
func (r *productRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*model.Product, error) {
	query := `
		SELECT id, title, description, image, price, stock, sales_count
		FROM products
		WHERE id = $1
		FOR UPDATE
	`

	var p model.Product
	err := tx.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.Price, &p.Stock, &p.SalesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to lock product row")
		return nil, fmt.Errorf("failed to lock product row: %w", err)
	}

	return &p, nil
}

// ApplySale decrements stock and increments sales_count by quantity.
func (r *productRepository) ApplySale(ctx context.Context, tx pgx.Tx, id string, quantity int) error {
	query := `
		UPDATE products
		SET stock = stock - $2, sales_count = sales_count + $2
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, id, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", id).
			Int("quantity", quantity).
			Msg("failed to apply sale")
		return fmt.Errorf("failed to apply sale: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to apply sale: product %s not found", id)
	}

	r.logger.Debug().
		Str("product_id", id).
		Int("quantity", quantity).
		Msg("sale applied")

	return nil
}

// Stats aggregates catalogue-wide sales figures.
func (r *productRepository) Stats(ctx context.Context) (*model.SalesStats, error) {
	query := `
		SELECT title, sales_count
		FROM products
		ORDER BY sales_count DESC, title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales stats")
		return nil, fmt.Errorf("failed to query sales stats: %w", err)
	}
	defer rows.Close()

	stats := &model.SalesStats{SalesByProduct: []model.ProductSales{}}
	for rows.Next() {
		var title string
		var sales int
		if err := rows.Scan(&title, &sales); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan stats row")
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.TotalProducts++
		stats.TotalSales += sales
		if sales > 0 {
			stats.SalesByProduct = append(stats.SalesByProduct, model.ProductSales{Title: title, Sales: sales})
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating stats rows")
		return nil, fmt.Errorf("error iterating stats rows: %w", err)
	}

	return stats, nil
}
