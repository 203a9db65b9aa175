package service

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	// Return a MockTx interface value, not a pointer
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) GetActive(ctx context.Context, userID string, populate bool) (*model.Cart, error) {
	args := m.Called(ctx, userID, populate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) GetActiveForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*model.Cart, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, tx pgx.Tx, cart *model.Cart) error {
	args := m.Called(ctx, tx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) InsertItem(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, item model.CartItem) error {
	args := m.Called(ctx, tx, cartID, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateItemQuantity(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, productID string, quantity int) error {
	args := m.Called(ctx, tx, cartID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, productID string) error {
	args := m.Called(ctx, tx, cartID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) ClearItems(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	args := m.Called(ctx, tx, cartID)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateTotal(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, total float64) error {
	args := m.Called(ctx, tx, cartID, total)
	return args.Error(0)
}

func (m *MockCartRepository) MarkCompleted(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	args := m.Called(ctx, tx, cartID)
	return args.Error(0)
}

// MockPromoValidator is a mock implementation of promo.Validator.
type MockPromoValidator struct {
	mock.Mock
}

func (m *MockPromoValidator) Validate(ctx context.Context, promoCode string) error {
	args := m.Called(ctx, promoCode)
	return args.Error(0)
}

func (m *MockPromoValidator) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockPublisher is a mock implementation of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) OrderCompleted(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func activeCartWith(userID string, items ...model.CartItem) *model.Cart {
	return &model.Cart{
		ID:         uuid.New(),
		UserID:     userID,
		Items:      items,
		TotalPrice: model.CartTotal(items),
		Status:     model.CartStatusActive,
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P001", UnitPrice: 100.00, Quantity: 2},
		model.CartItem{ProductID: "P002", UnitPrice: 25.50, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P001").
		Return(&model.Product{ID: "P001", Title: "Product 1", Image: "p1.jpg", Price: 110.00, Stock: 5}, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P002").
		Return(&model.Product{ID: "P002", Title: "Product 2", Image: "p2.jpg", Price: 25.50, Stock: 1}, nil)
	mockProductRepo.On("ApplySale", ctx, mockTx, "P001", 2).Return(nil)
	mockProductRepo.On("ApplySale", ctx, mockTx, "P002", 1).Return(nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockCartRepo.On("MarkCompleted", ctx, mockTx, cart.ID).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, "221B Baker Street", order.Address)
	assert.Nil(t, order.PromoCode)
	assert.Equal(t, 225.50, order.TotalPrice)

	// Item snapshots carry the price captured when the item was added, not
	// the current catalogue price.
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Product 1", order.Items[0].ProductTitle)
	assert.Equal(t, 100.00, order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Product 2", order.Items[1].ProductTitle)

	mockCartRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
	mockValidator.AssertNotCalled(t, "Validate")
}

func TestOrderService_Checkout_WithPromoCode(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	promoCode := "WELCOME10"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P001", UnitPrice: 50.00, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	mockValidator.On("Validate", ctx, promoCode).Return(nil)
	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P001").
		Return(&model.Product{ID: "P001", Title: "Product 1", Price: 50.00, Stock: 3}, nil)
	mockProductRepo.On("ApplySale", ctx, mockTx, "P001", 1).Return(nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockCartRepo.On("MarkCompleted", ctx, mockTx, cart.ID).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.Checkout(ctx, userID, "221B Baker Street", &promoCode)

	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, order.PromoCode)
	assert.Equal(t, promoCode, *order.PromoCode)

	mockValidator.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_InvalidPromoCode(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	promoCode := "BOGUSCODE1"

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	mockValidator.On("Validate", ctx, promoCode).Return(model.ErrInvalidPromoCode)

	order, err := service.Checkout(ctx, "user-1", "221B Baker Street", &promoCode)

	require.Error(t, err)
	assert.Equal(t, model.ErrInvalidPromoCode, err)
	assert.Nil(t, order)

	mockValidator.AssertExpectations(t)
	mockCartRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_Checkout_MissingAddress(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	tests := []struct {
		name    string
		address string
	}{
		{name: "Empty address", address: ""},
		{name: "Whitespace-only address", address: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.Checkout(ctx, "user-1", tt.address, nil)

			require.Error(t, err)
			assert.Equal(t, model.ErrMissingAddress, err)
			assert.Nil(t, order)
		})
	}

	mockCartRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"

	tests := []struct {
		name string
		cart *model.Cart
	}{
		{name: "No active cart", cart: nil},
		{name: "Active cart with no items", cart: activeCartWith(userID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockCartRepo := new(MockCartRepository)
			mockProductRepo := new(MockProductRepository)
			mockValidator := new(MockPromoValidator)
			mockTx := new(MockTx)

			service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

			mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
			mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(tt.cart, nil)
			mockTx.On("Rollback", ctx).Return(nil)

			order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

			require.Error(t, err)
			assert.Equal(t, model.ErrEmptyCart, err)
			assert.Nil(t, order)
			assert.True(t, mockTx.rolledBack)

			mockOrderRepo.AssertNotCalled(t, "CreateOrder")
		})
	}
}

func TestOrderService_Checkout_ProductVanished(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P404", UnitPrice: 10.00, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P404").Return(nil, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, order)
	assert.True(t, mockTx.rolledBack)

	mockOrderRepo.AssertNotCalled(t, "CreateOrder")
	mockCartRepo.AssertNotCalled(t, "MarkCompleted")
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P001", UnitPrice: 100.00, Quantity: 6},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P001").
		Return(&model.Product{ID: "P001", Title: "Product 1", Price: 100.00, Stock: 5}, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

	require.Error(t, err)
	assert.Equal(t, model.ErrInsufficientStock, err)
	assert.Nil(t, order)
	assert.True(t, mockTx.rolledBack)

	mockProductRepo.AssertNotCalled(t, "ApplySale")
	mockOrderRepo.AssertNotCalled(t, "CreateOrder")
}

func TestOrderService_Checkout_CreateOrderFailureRollsBack(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P001", UnitPrice: 100.00, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, nil, logger)

	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P001").
		Return(&model.Product{ID: "P001", Title: "Product 1", Price: 100.00, Stock: 5}, nil)
	mockProductRepo.On("ApplySale", ctx, mockTx, "P001", 1).Return(nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)

	mockCartRepo.AssertNotCalled(t, "MarkCompleted")
}

func TestOrderService_Checkout_PublishesEvent(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P001", UnitPrice: 100.00, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockPublisher := new(MockPublisher)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, mockPublisher, logger)

	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P001").
		Return(&model.Product{ID: "P001", Title: "Product 1", Price: 100.00, Stock: 5}, nil)
	mockProductRepo.On("ApplySale", ctx, mockTx, "P001", 1).Return(nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockCartRepo.On("MarkCompleted", ctx, mockTx, cart.ID).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockPublisher.On("OrderCompleted", ctx, mock.AnythingOfType("*model.Order")).Return(nil)

	order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

	require.NoError(t, err)
	require.NotNil(t, order)

	mockPublisher.AssertExpectations(t)
}

func TestOrderService_Checkout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := "user-1"
	cart := activeCartWith(userID,
		model.CartItem{ProductID: "P001", UnitPrice: 100.00, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	mockValidator := new(MockPromoValidator)
	mockPublisher := new(MockPublisher)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProductRepo, mockValidator, mockPublisher, logger)

	mockCartRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockCartRepo.On("GetActiveForUpdate", ctx, mockTx, userID).Return(cart, nil)
	mockProductRepo.On("GetByIDForUpdate", ctx, mockTx, "P001").
		Return(&model.Product{ID: "P001", Title: "Product 1", Price: 100.00, Stock: 5}, nil)
	mockProductRepo.On("ApplySale", ctx, mockTx, "P001", 1).Return(nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockCartRepo.On("MarkCompleted", ctx, mockTx, cart.ID).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockPublisher.On("OrderCompleted", ctx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("broker unreachable"))

	order, err := service.Checkout(ctx, userID, "221B Baker Street", nil)

	require.NoError(t, err)
	require.NotNil(t, order)

	mockPublisher.AssertExpectations(t)
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	expected := &model.Order{ID: orderID, UserID: "user-1", TotalPrice: 42.00}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockCartRepository), new(MockProductRepository), new(MockPromoValidator), nil, logger)

	mockOrderRepo.On("GetByID", ctx, orderID).Return(expected, nil)

	order, err := service.GetByID(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockCartRepository), new(MockProductRepository), new(MockPromoValidator), nil, logger)

	mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil)

	order, err := service.GetByID(ctx, orderID)

	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderService_ListByUser(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	expected := []model.Order{
		{ID: uuid.New(), UserID: "user-1", TotalPrice: 400.00},
		{ID: uuid.New(), UserID: "user-1", TotalPrice: 25.50},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockCartRepository), new(MockProductRepository), new(MockPromoValidator), nil, logger)

	mockOrderRepo.On("ListByUser", ctx, "user-1").Return(expected, nil)

	orders, err := service.ListByUser(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
