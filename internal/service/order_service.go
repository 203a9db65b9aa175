package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/events"
	"storefront/internal/model"
	"storefront/internal/promo"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	validator   promo.Validator
	publisher   events.Publisher
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	validator promo.Validator,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		validator:   validator,
		publisher:   publisher,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Checkout converts the user's active cart into an immutable order.
//
// The whole conversion is one transaction: every product row is locked and
// revalidated against current stock before stock is decremented and
// sales_count incremented, the order and its denormalized item snapshots are
// inserted, and the cart is marked completed. Any failure rolls the entire
// checkout back, so stock can never be depleted by a half-finished order.
func (s *orderService) Checkout(ctx context.Context, userID, address string, promoCode *string) (*model.Order, error) {
	if strings.TrimSpace(address) == "" {
		return nil, model.ErrMissingAddress
	}

	// Validate promo code if provided
	if promoCode != nil && *promoCode != "" {
		if err := s.validator.Validate(ctx, *promoCode); err != nil {
			s.logger.Warn().
				Str("promo_code", *promoCode).
				Err(err).
				Msg("invalid promo code")
			return nil, err
		}
		s.logger.Debug().Str("promo_code", *promoCode).Msg("promo code validated")
	} else {
		promoCode = nil
	}

	tx, err := s.cartRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var cart *model.Cart
	cart, err = s.cartRepo.GetActiveForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		err = model.ErrEmptyCart
		return nil, err
	}

	order := &model.Order{
		ID:         uuid.New(),
		UserID:     userID,
		Items:      make([]model.OrderItem, 0, len(cart.Items)),
		TotalPrice: cart.TotalPrice,
		Address:    address,
		PromoCode:  promoCode,
		CreatedAt:  time.Now(),
	}

	for _, line := range cart.Items {
		var product *model.Product
		product, err = s.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			s.logger.Warn().
				Str("product_id", line.ProductID).
				Msg("cart line references missing product")
			err = model.ErrProductNotFound
			return nil, err
		}
		if product.Stock < line.Quantity {
			s.logger.Warn().
				Str("product_id", line.ProductID).
				Int("stock", product.Stock).
				Int("requested", line.Quantity).
				Msg("insufficient stock at checkout")
			err = model.ErrInsufficientStock
			return nil, err
		}

		if err = s.productRepo.ApplySale(ctx, tx, product.ID, line.Quantity); err != nil {
			return nil, err
		}

		order.Items = append(order.Items, model.OrderItem{
			ID:           uuid.New(),
			OrderID:      order.ID,
			ProductTitle: product.Title,
			Image:        product.Image,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
		})
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.Items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(order.Items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	if err = s.cartRepo.MarkCompleted(ctx, tx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	// Best effort; a lost event never fails a committed checkout.
	if s.publisher != nil {
		if pubErr := s.publisher.OrderCompleted(ctx, order); pubErr != nil {
			s.logger.Warn().Err(pubErr).Str("order_id", order.ID.String()).Msg("failed to publish order event")
		}
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("cart_id", cart.ID.String()).
		Int("item_count", len(order.Items)).
		Float64("total_price", order.TotalPrice).
		Msg("checkout completed")

	return order, nil
}

// GetByID retrieves an order by its ID with all item snapshots.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, nil
	}

	return order, nil
}

// ListByUser retrieves the user's orders, newest first.
func (s *orderService) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
