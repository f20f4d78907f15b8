package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/beverage"
	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	MarkOrderPreparing commands.MarkOrderPreparingCommandHandler
	MarkOrderReady     commands.MarkOrderReadyCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	ListAllOrders      queries.ListAllOrdersQueryHandler
	Quote              queries.QuoteQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
// Beverages in request bodies are priced with the menu.
type Server struct {
	handlers Handlers
	menu     beverage.Menu
	metrics  *Metrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, menu beverage.Menu, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		menu:     menu,
		metrics:  metrics,
		logger:   logger.With("component", "http_server"),
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body PlaceOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return s.respondError(ctx, err)
	}

	customerID := kernel.NewUUID()
	if body.Customer.ID != nil {
		id, err := kernel.UUIDFromBytes(body.Customer.ID[:])
		if err != nil {
			return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("customer.id", err))
		}
		customerID = id
	}
	c, err := customer.NewCustomer(customerID, body.Customer.Name, body.Customer.Email, body.Customer.Phone)
	if err != nil {
		return s.respondError(ctx, err)
	}

	items, err := s.basket(body.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), c, items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	outcome, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderOutcome(outcome))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	var (
		orders []*order.Order
		err    error
	)

	if params.Email != nil && strings.TrimSpace(*params.Email) != "" {
		query, queryErr := queries.NewListCustomerOrdersQuery(*params.Email)
		if queryErr != nil {
			return s.respondError(ctx, queryErr)
		}
		orders, err = s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	} else {
		orders, err = s.handlers.ListAllOrders.Handle(ctx.Request().Context(), queries.NewListAllOrdersQuery())
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id uuid.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// MarkOrderPreparing handles POST /api/v1/orders/{id}/preparing.
func (s *Server) MarkOrderPreparing(ctx echo.Context, id uuid.UUID) error {
	return s.transition(ctx, id, func(orderID kernel.UUID) (commands.Outcome, error) {
		cmd, err := commands.NewMarkOrderPreparingCommand(orderID)
		if err != nil {
			return commands.Outcome{}, err
		}
		return s.handlers.MarkOrderPreparing.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkOrderReady handles POST /api/v1/orders/{id}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context, id uuid.UUID) error {
	return s.transition(ctx, id, func(orderID kernel.UUID) (commands.Outcome, error) {
		cmd, err := commands.NewMarkOrderReadyCommand(orderID)
		if err != nil {
			return commands.Outcome{}, err
		}
		return s.handlers.MarkOrderReady.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/{id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, id uuid.UUID) error {
	return s.transition(ctx, id, func(orderID kernel.UUID) (commands.Outcome, error) {
		cmd, err := commands.NewCompleteOrderCommand(orderID)
		if err != nil {
			return commands.Outcome{}, err
		}
		return s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id uuid.UUID) error {
	return s.transition(ctx, id, func(orderID kernel.UUID) (commands.Outcome, error) {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return commands.Outcome{}, err
		}
		return s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// QuoteBasket handles POST /api/v1/quotes.
func (s *Server) QuoteBasket(ctx echo.Context) error {
	var body QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return s.respondError(ctx, err)
	}

	items, err := s.basket(body.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var email string
	if body.Email != nil {
		email = *body.Email
	}
	query, err := queries.NewQuoteQuery(email, items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	quote, err := s.handlers.Quote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Quote{
		Subtotal:        quote.Subtotal.String(),
		DiscountPercent: quote.DiscountPercent.String(),
		Discount:        quote.Discount.String(),
		Tax:             quote.Tax.String(),
		Total:           quote.Total.String(),
	})
}

func (s *Server) transition(
	ctx echo.Context,
	id uuid.UUID,
	handle func(kernel.UUID) (commands.Outcome, error),
) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	outcome, err := handle(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderOutcome(outcome))
}

// basket prices the requested beverages with the menu.
func (s *Server) basket(requested []BasketItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requested))
	for i, r := range requested {
		b, err := toBeverage(r)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		item, err := s.menu.Item(b, r.Quantity)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		items = append(items, item)
	}
	return items, nil
}
