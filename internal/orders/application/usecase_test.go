package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms/internal/orders/domain"
	"oms/pkg/errors"
	"oms/pkg/logger"
)

// MockOrderStore is an in-memory implementation of OrderStore honoring the
// same state machine as the file-backed store
type MockOrderStore struct {
	orders []domain.Order
}

func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{}
}

func (m *MockOrderStore) Create(ctx context.Context, customerID string, items []domain.OrderItem, address domain.ShippingAddress) (*domain.Order, error) {
	orderID, err := domain.NextOrderID(m.orders)
	if err != nil {
		return nil, err
	}
	order, err := domain.NewOrder(orderID, customerID, items, address, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	m.orders = append(m.orders, *order)
	return order, nil
}

func (m *MockOrderStore) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, domain.NewOrderNotFound(orderID)
}

func (m *MockOrderStore) Update(ctx context.Context, orderID string, items []domain.OrderItem, address *domain.ShippingAddress) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			order := &m.orders[i]
			if !order.Status.CanModify() {
				return nil, domain.NewCannotUpdate(orderID, order.Status)
			}
			if items != nil {
				order.Items = items
				order.TotalAmount = domain.TotalAmount(items)
			}
			if address != nil {
				order.ShippingAddress = address.Normalized()
			}
			order.UpdatedAt = time.Now().UTC()
			updated := *order
			return &updated, nil
		}
	}
	return nil, domain.NewOrderNotFound(orderID)
}

func (m *MockOrderStore) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			order := &m.orders[i]
			if !order.Status.CanCancel() {
				return nil, domain.NewCannotCancel(orderID, order.Status)
			}
			order.Status = domain.OrderStatusCancelled
			order.UpdatedAt = time.Now().UTC()
			cancelled := *order
			return &cancelled, nil
		}
	}
	return nil, domain.NewOrderNotFound(orderID)
}

func (m *MockOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	return m.orders, nil
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	created   []string
	updated   []string
	cancelled []string
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	m.created = append(m.created, order.OrderID)
	return nil
}

func (m *MockEventPublisher) PublishOrderUpdated(ctx context.Context, order *domain.Order) error {
	m.updated = append(m.updated, order.OrderID)
	return nil
}

func (m *MockEventPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	m.cancelled = append(m.cancelled, order.OrderID)
	return nil
}

func testItems() []domain.OrderItem {
	return []domain.OrderItem{
		{ProductID: "PROD-A", ProductName: "Widget", Quantity: 2, UnitPrice: 10.00},
		{ProductID: "PROD-B", ProductName: "Gadget", Quantity: 1, UnitPrice: 5.00},
	}
}

func testAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		Street:  "123 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62704",
		Country: "USA",
	}
}

func newTestUseCase() (*OrderUseCase, *MockOrderStore, *MockEventPublisher) {
	store := NewMockOrderStore()
	publisher := &MockEventPublisher{}
	log := logger.New("test", "debug")
	return NewOrderUseCase(store, publisher, log), store, publisher
}

func TestCreateOrder_Success(t *testing.T) {
	// Arrange
	useCase, _, publisher := newTestUseCase()

	input := CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           testItems(),
		ShippingAddress: testAddress(),
	}

	// Act
	output, err := useCase.CreateOrder(context.Background(), input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", output.Order.OrderID)
	assert.Equal(t, domain.OrderStatusPending, output.Order.Status)
	assert.Equal(t, 25.00, output.Order.TotalAmount)
	assert.Equal(t, []string{"ORD-001"}, publisher.created)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	// Arrange
	useCase, _, publisher := newTestUseCase()

	input := CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           nil, // no items
		ShippingAddress: testAddress(),
	}

	// Act
	_, err := useCase.CreateOrder(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
	assert.Empty(t, publisher.created)
}

func TestGetOrder_NotFound(t *testing.T) {
	// Arrange
	useCase, _, _ := newTestUseCase()

	// Act
	_, err := useCase.GetOrder(context.Background(), GetOrderInput{OrderID: "ORD-999"})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestGetOrderStatus_Success(t *testing.T) {
	// Arrange
	useCase, _, _ := newTestUseCase()
	created, err := useCase.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           testItems(),
		ShippingAddress: testAddress(),
	})
	require.NoError(t, err)

	// Act
	output, err := useCase.GetOrderStatus(context.Background(), GetOrderStatusInput{
		OrderID: created.Order.OrderID,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created.Order.OrderID, output.OrderID)
	assert.Equal(t, domain.OrderStatusPending, output.Status)
}

func TestUpdateOrder_Success(t *testing.T) {
	// Arrange
	useCase, _, publisher := newTestUseCase()
	created, err := useCase.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           testItems(),
		ShippingAddress: testAddress(),
	})
	require.NoError(t, err)

	newItems := []domain.OrderItem{
		{ProductID: "PROD-C", ProductName: "Gizmo", Quantity: 4, UnitPrice: 2.50},
	}

	// Act
	output, err := useCase.UpdateOrder(context.Background(), UpdateOrderInput{
		OrderID: created.Order.OrderID,
		Items:   newItems,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10.00, output.Order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, output.Order.Status)
	assert.Equal(t, []string{"ORD-001"}, publisher.updated)
}

func TestUpdateOrder_IllegalTransition(t *testing.T) {
	// Arrange
	useCase, _, publisher := newTestUseCase()
	created, err := useCase.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           testItems(),
		ShippingAddress: testAddress(),
	})
	require.NoError(t, err)

	_, err = useCase.CancelOrder(context.Background(), CancelOrderInput{OrderID: created.Order.OrderID})
	require.NoError(t, err)

	// Act
	_, err = useCase.UpdateOrder(context.Background(), UpdateOrderInput{
		OrderID: created.Order.OrderID,
		Items:   testItems(),
	})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeIllegalTransition))
	assert.Empty(t, publisher.updated)
}

func TestCancelOrder_Success(t *testing.T) {
	// Arrange
	useCase, _, publisher := newTestUseCase()
	created, err := useCase.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           testItems(),
		ShippingAddress: testAddress(),
	})
	require.NoError(t, err)

	// Act
	output, err := useCase.CancelOrder(context.Background(), CancelOrderInput{
		OrderID: created.Order.OrderID,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, output.Order.Status)
	assert.Equal(t, []string{"ORD-001"}, publisher.cancelled)
}

func TestCancelOrder_NotFound(t *testing.T) {
	// Arrange
	useCase, _, publisher := newTestUseCase()

	// Act
	_, err := useCase.CancelOrder(context.Background(), CancelOrderInput{OrderID: "ORD-404"})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
	assert.Empty(t, publisher.cancelled)
}

func TestListOrders(t *testing.T) {
	// Arrange
	useCase, _, _ := newTestUseCase()
	for i := 0; i < 3; i++ {
		_, err := useCase.CreateOrder(context.Background(), CreateOrderInput{
			CustomerID:      "CUST-1",
			Items:           testItems(),
			ShippingAddress: testAddress(),
		})
		require.NoError(t, err)
	}

	// Act
	output, err := useCase.ListOrders(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, output.Count)
	assert.Len(t, output.Orders, 3)
}

func TestCreateOrder_NilPublisher(t *testing.T) {
	// Arrange: events disabled when no broker is configured
	store := NewMockOrderStore()
	log := logger.New("test", "debug")
	useCase := NewOrderUseCase(store, nil, log)

	// Act
	output, err := useCase.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:      "CUST-1",
		Items:           testItems(),
		ShippingAddress: testAddress(),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", output.Order.OrderID)
}
