package commands_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) ProcessPayment(ctx context.Context, amount kernel.Money) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProcessor) MethodName() string {
	return "Mock"
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderPlaced(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockNotifier) NotifyOrderReady(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockNotifier) NotifyOrderCancelled(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockRecoveryStrategy struct{ mock.Mock }

func (m *MockRecoveryStrategy) Recover(ctx context.Context, o *order.Order, cause error) error {
	return m.Called(ctx, o, cause).Error(0)
}

var createdAt = time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)

func newAlice(t *testing.T) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Alice", "alice@example.com", nil)
	require.NoError(t, err)
	return c
}

func newItem(t *testing.T, name, price string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(name, name+" (Medium)", kernel.MustMoney(price), quantity)
	require.NoError(t, err)
	return item
}

// orderIn builds a stored order in the given status.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	paymentID := "CASH-1"
	if status == order.Pending {
		paymentID = ""
	}
	o, err := order.RestoreOrder(
		kernel.NewUUID(), newAlice(t), []order.Item{newItem(t, "Coffee", "3.50", 1)},
		status, createdAt, kernel.MustMoney("3.50"), paymentID,
	)
	require.NoError(t, err)
	return o
}

func inStatus(status order.Status) any {
	return mock.MatchedBy(func(o *order.Order) bool { return o.Status() == status })
}

func amount(s string) any {
	want := kernel.MustMoney(s)
	return mock.MatchedBy(func(m kernel.Money) bool { return m.IsEqual(want) })
}
