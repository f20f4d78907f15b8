package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// ListCustomerOrdersQueryHandler returns a customer's orders, oldest first.
type ListCustomerOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListCustomerOrdersQueryHandler(orders ports.OrderRepository) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{orders: orders}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.FindByCustomerEmail(ctx, query.Email())
	if err != nil {
		return nil, errs.NewStorageFailedError("list", err)
	}
	return nonNil(orders), nil
}

// ListAllOrdersQueryHandler returns every order, oldest first.
type ListAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListAllOrdersQueryHandler(orders ports.OrderRepository) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{orders: orders}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		return nil, errs.NewStorageFailedError("list", err)
	}
	return nonNil(orders), nil
}

func nonNil(orders []*order.Order) []*order.Order {
	if orders == nil {
		return make([]*order.Order, 0)
	}
	return orders
}
