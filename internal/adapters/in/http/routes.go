package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of api/openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id uuid.UUID) error
	// (POST /api/v1/orders/{id}/preparing)
	MarkOrderPreparing(ctx echo.Context, id uuid.UUID) error
	// (POST /api/v1/orders/{id}/ready)
	MarkOrderReady(ctx echo.Context, id uuid.UUID) error
	// (POST /api/v1/orders/{id}/complete)
	CompleteOrder(ctx echo.Context, id uuid.UUID) error
	// (POST /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id uuid.UUID) error
	// (POST /api/v1/quotes)
	QuoteBasket(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "email", ctx.QueryParams(), &params.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter email: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.GetOrder)
}

func (w *ServerInterfaceWrapper) MarkOrderPreparing(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.MarkOrderPreparing)
}

func (w *ServerInterfaceWrapper) MarkOrderReady(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.MarkOrderReady)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.CompleteOrder)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.CancelOrder)
}

func (w *ServerInterfaceWrapper) QuoteBasket(ctx echo.Context) error {
	return w.Handler.QuoteBasket(ctx)
}

func (w *ServerInterfaceWrapper) withOrderID(ctx echo.Context, next func(echo.Context, uuid.UUID) error) error {
	var id uuid.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return next(ctx, id)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:id/preparing", wrapper.MarkOrderPreparing)
	router.POST(baseURL+"/api/v1/orders/:id/ready", wrapper.MarkOrderReady)
	router.POST(baseURL+"/api/v1/orders/:id/complete", wrapper.CompleteOrder)
	router.POST(baseURL+"/api/v1/orders/:id/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/quotes", wrapper.QuoteBasket)
}
