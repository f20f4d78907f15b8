package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/memory"
	"coffeeshop/internal/adapters/out/notify"
	"coffeeshop/internal/adapters/out/payment"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/beverage"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPayments struct{}

func (failingPayments) ProcessPayment(context.Context, kernel.Money) (string, error) {
	return "", ports.NewPaymentError(ports.InsufficientFunds, "card declined")
}

func (failingPayments) MethodName() string { return "Declining Card" }

type apiFixture struct {
	e        *echo.Echo
	orders   *memory.OrderRepository
	registry *prometheus.Registry
}

func newAPIFixture(t *testing.T, payments ports.PaymentProcessor) apiFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orders := memory.NewOrderRepository()
	notifier := notify.NewLogNotifier(logger)
	calculator, err := services.NewPricingCalculator(decimal.RequireFromString("0.08"))
	require.NoError(t, err)
	opts := []commands.Option{commands.WithLogger(logger), commands.WithOrderLocker(commands.NewKeyedMutex())}

	handlers := httpadapter.Handlers{
		PlaceOrder:         commands.NewPlaceOrderCommandHandler(orders, payments, notifier, opts...),
		MarkOrderPreparing: commands.NewMarkOrderPreparingCommandHandler(orders, opts...),
		MarkOrderReady:     commands.NewMarkOrderReadyCommandHandler(orders, notifier, opts...),
		CompleteOrder:      commands.NewCompleteOrderCommandHandler(orders, opts...),
		CancelOrder:        commands.NewCancelOrderCommandHandler(orders, notifier, opts...),
		GetOrder:           queries.NewGetOrderQueryHandler(orders),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(orders),
		ListAllOrders:      queries.NewListAllOrdersQueryHandler(orders),
		Quote:              queries.NewQuoteQueryHandler(orders, calculator),
	}

	registry := prometheus.NewRegistry()
	metrics := httpadapter.NewMetrics(registry)
	server := httpadapter.NewServer(handlers, beverage.DefaultMenu(), metrics, logger)
	e, err := httpadapter.NewRouter(server, metrics, registry)
	require.NoError(t, err)

	return apiFixture{e: e, orders: orders, registry: registry}
}

func (f apiFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v), rec.Body.String())
	return v
}

const aliceOrder = `{
	"customer": {"name": "Alice", "email": "alice@example.com"},
	"items": [{"type": "coffee", "size": "M", "quantity": 1}]
}`

func (f apiFixture) placeOrder(t *testing.T) httpadapter.OrderOutcome {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpadapter.OrderOutcome](t, rec)
}

func TestPlaceOrder(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())

	outcome := f.placeOrder(t)

	assert.True(t, outcome.Transitioned)
	assert.Equal(t, "Paid", outcome.Order.Status)
	assert.Equal(t, "3.50", outcome.Order.TotalPrice)
	require.NotNil(t, outcome.Order.PaymentID)
	assert.True(t, strings.HasPrefix(*outcome.Order.PaymentID, "CASH-"))
	require.Len(t, outcome.Order.Items, 1)
	assert.Equal(t, "Coffee (Medium)", outcome.Order.Items[0].Description)

	stored, err := f.orders.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPlaceOrder_EmptyBasketIsUnprocessable(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())

	rec := f.do(t, http.MethodPost, "/api/v1/orders",
		`{"customer": {"name": "Alice", "email": "alice@example.com"}, "items": []}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[httpadapter.Error](t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, body.Code)
	assert.Contains(t, body.Message, "at least one item")
	assert.InDelta(t, 1, failureCount(t, f.registry, "validation"), 0)
}

func TestPlaceOrder_PaymentFailed(t *testing.T) {
	f := newAPIFixture(t, failingPayments{})

	rec := f.do(t, http.MethodPost, "/api/v1/orders", aliceOrder)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "insufficient funds")
	assert.InDelta(t, 1, failureCount(t, f.registry, "payment"), 0)
	stored, err := f.orders.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPlaceOrder_RequestValidation(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())

	cases := map[string]string{
		"zero quantity":    `{"customer": {"name": "A", "email": "a@example.com"}, "items": [{"type": "tea", "quantity": 0}]}`,
		"unknown beverage": `{"customer": {"name": "A", "email": "a@example.com"}, "items": [{"type": "juice", "quantity": 1}]}`,
		"missing customer": `{"items": [{"type": "tea", "quantity": 1}]}`,
		"bad email":        `{"customer": {"name": "A", "email": "not-an-email"}, "items": [{"type": "tea", "quantity": 1}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/v1/orders", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestGetOrder(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())
	placed := f.placeOrder(t)

	rec := f.do(t, http.MethodGet, "/api/v1/orders/"+placed.Order.ID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, placed.Order.ID, decode[httpadapter.Order](t, rec).ID)

	rec = f.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrders(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())
	f.placeOrder(t)
	f.placeOrder(t)

	rec := f.do(t, http.MethodGet, "/api/v1/orders?email=alice@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpadapter.Order](t, rec), 2)

	rec = f.do(t, http.MethodGet, "/api/v1/orders?email=bob@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpadapter.Order](t, rec), 2)
}

func TestLifecycle(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())
	path := "/api/v1/orders/" + f.placeOrder(t).Order.ID.String()

	steps := []struct {
		action       string
		status       string
		transitioned bool
	}{
		{"ready", "Paid", false},
		{"preparing", "Preparing", true},
		{"ready", "Ready", true},
		{"ready", "Ready", false},
		{"complete", "Completed", true},
	}
	for _, step := range steps {
		rec := f.do(t, http.MethodPost, path+"/"+step.action, "")
		require.Equal(t, http.StatusOK, rec.Code, step.action)
		outcome := decode[httpadapter.OrderOutcome](t, rec)
		assert.Equal(t, step.status, outcome.Order.Status, step.action)
		assert.Equal(t, step.transitioned, outcome.Transitioned, step.action)
	}

	rec := f.do(t, http.MethodPost, path+"/cancel", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	stored, err := f.orders.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, order.Completed, stored[0].Status())
}

func TestCancelOrder(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())
	path := "/api/v1/orders/" + f.placeOrder(t).Order.ID.String() + "/cancel"

	rec := f.do(t, http.MethodPost, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cancelled", decode[httpadapter.OrderOutcome](t, rec).Order.Status)

	rec = f.do(t, http.MethodPost, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[httpadapter.OrderOutcome](t, rec).Transitioned)

	rec = f.do(t, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteBasket(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())

	rec := f.do(t, http.MethodPost, "/api/v1/quotes", `{
		"items": [
			{"type": "coffee", "size": "L", "extra_shots": 1, "quantity": 2},
			{"type": "smoothie", "size": "S", "fruits": ["Mango", "Kiwi"], "quantity": 1}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	quote := decode[httpadapter.Quote](t, rec)
	// Large coffee with a shot is 5.10, small two fruit smoothie 4.40.
	assert.Equal(t, "14.60", quote.Subtotal)
	assert.Equal(t, "0.00", quote.Discount)
	assert.Equal(t, "1.17", quote.Tax)
	assert.Equal(t, "15.77", quote.Total)

	rec = f.do(t, http.MethodPost, "/api/v1/quotes", `{"items": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	f := newAPIFixture(t, payment.NewCash())
	f.placeOrder(t)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `coffeeshop_http_requests_total{method="POST",route="/api/v1/orders",status="201"} 1`)

	rec = f.do(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"swagger":"2.0"`)

	rec = f.do(t, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func failureCount(t *testing.T, registry *prometheus.Registry, stage string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "coffeeshop_orders_workflow_failures_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "stage" && label.GetValue() == stage {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
