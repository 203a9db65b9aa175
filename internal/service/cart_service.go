package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
//
// Every mutation runs in a transaction that first locks the user's cart row,
// so two concurrent mutations for the same user serialise instead of
// interleaving their read and write phases.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// GetActiveCart returns the user's active cart, creating one lazily.
func (s *cartService) GetActiveCart(ctx context.Context, userID string, populate bool) (*model.Cart, error) {
	cart, err := s.cartRepo.GetActive(ctx, userID, populate)
	if err != nil {
		return nil, fmt.Errorf("failed to get active cart: %w", err)
	}
	if cart != nil {
		return cart, nil
	}

	tx, err := s.cartRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	cart, err = s.getOrCreateLocked(ctx, tx, userID)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	s.logger.Debug().
		Str("cart_id", cart.ID.String()).
		Str("user_id", userID).
		Msg("active cart ready")

	return cart, nil
}

// AddItem appends a new line for the product with a price snapshot.
func (s *cartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	err := s.mutate(ctx, userID, func(tx pgx.Tx, cart *model.Cart) error {
		if cart.FindItem(productID) != nil {
			return model.ErrDuplicateItem
		}

		product, err := s.productRepo.GetByIDForUpdate(ctx, tx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return model.ErrProductNotFound
		}
		if product.Stock < quantity {
			s.logger.Debug().
				Str("product_id", productID).
				Int("stock", product.Stock).
				Int("requested", quantity).
				Msg("insufficient stock for add")
			return model.ErrInsufficientStock
		}

		item := model.CartItem{
			ProductID: productID,
			UnitPrice: product.Price,
			Quantity:  quantity,
		}
		if err := s.cartRepo.InsertItem(ctx, tx, cart.ID, item); err != nil {
			return err
		}

		return s.cartRepo.UpdateTotal(ctx, tx, cart.ID, cart.TotalPrice+item.ItemTotal())
	})
	if err != nil {
		return nil, err
	}

	return s.refreshed(ctx, userID)
}

// UpdateItem replaces a line's quantity, revalidating against live stock.
func (s *cartService) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	err := s.mutate(ctx, userID, func(tx pgx.Tx, cart *model.Cart) error {
		line := cart.FindItem(productID)
		if line == nil {
			return model.ErrItemNotInCart
		}

		product, err := s.productRepo.GetByIDForUpdate(ctx, tx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return model.ErrProductNotFound
		}
		if product.Stock < quantity {
			s.logger.Debug().
				Str("product_id", productID).
				Int("stock", product.Stock).
				Int("requested", quantity).
				Msg("insufficient stock for update")
			return model.ErrInsufficientStock
		}

		if err := s.cartRepo.UpdateItemQuantity(ctx, tx, cart.ID, productID, quantity); err != nil {
			return err
		}

		// Recompute from the full line set rather than adjusting by delta.
		line.Quantity = quantity
		return s.cartRepo.UpdateTotal(ctx, tx, cart.ID, model.CartTotal(cart.Items))
	})
	if err != nil {
		return nil, err
	}

	return s.refreshed(ctx, userID)
}

// DeleteItem removes a line and recomputes the total from the rest.
func (s *cartService) DeleteItem(ctx context.Context, userID, productID string) (*model.Cart, error) {
	err := s.mutate(ctx, userID, func(tx pgx.Tx, cart *model.Cart) error {
		if cart.FindItem(productID) == nil {
			return model.ErrItemNotInCart
		}

		if err := s.cartRepo.DeleteItem(ctx, tx, cart.ID, productID); err != nil {
			return err
		}

		remaining := make([]model.CartItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			if item.ProductID != productID {
				remaining = append(remaining, item)
			}
		}
		return s.cartRepo.UpdateTotal(ctx, tx, cart.ID, model.CartTotal(remaining))
	})
	if err != nil {
		return nil, err
	}

	return s.refreshed(ctx, userID)
}

// ClearCart empties the cart unconditionally.
func (s *cartService) ClearCart(ctx context.Context, userID string) (*model.Cart, error) {
	err := s.mutate(ctx, userID, func(tx pgx.Tx, cart *model.Cart) error {
		if err := s.cartRepo.ClearItems(ctx, tx, cart.ID); err != nil {
			return err
		}
		return s.cartRepo.UpdateTotal(ctx, tx, cart.ID, 0)
	})
	if err != nil {
		return nil, err
	}

	return s.refreshed(ctx, userID)
}

// mutate runs fn against the user's locked active cart inside a transaction,
// creating the cart first if needed. Any error from fn rolls the whole
// mutation back.
func (s *cartService) mutate(ctx context.Context, userID string, fn func(tx pgx.Tx, cart *model.Cart) error) error {
	tx, err := s.cartRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin cart mutation: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var cart *model.Cart
	cart, err = s.getOrCreateLocked(ctx, tx, userID)
	if err != nil {
		return err
	}

	if err = fn(tx, cart); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cart mutation: %w", err)
	}

	return nil
}

// getOrCreateLocked loads the user's active cart under a row lock, inserting
// a fresh empty cart when none exists. The insert is a no-op when a
// concurrent request created the cart first, so the follow-up read always
// locks the single surviving row.
func (s *cartService) getOrCreateLocked(ctx context.Context, tx pgx.Tx, userID string) (*model.Cart, error) {
	cart, err := s.cartRepo.GetActiveForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = &model.Cart{
		ID:         uuid.New(),
		UserID:     userID,
		Items:      []model.CartItem{},
		TotalPrice: 0,
		Status:     model.CartStatusActive,
	}

	if err := s.cartRepo.Create(ctx, tx, cart); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Msg("created new active cart")

	return s.cartRepo.GetActiveForUpdate(ctx, tx, userID)
}

// refreshed re-reads the populated cart after a successful mutation.
func (s *cartService) refreshed(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := s.cartRepo.GetActive(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cart: %w", err)
	}
	if cart == nil {
		return nil, fmt.Errorf("failed to reload cart: no active cart for user %s", userID)
	}
	return cart, nil
}
