package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// CompleteOrderCommandHandler moves a Ready order to Completed, its final status.
type CompleteOrderCommandHandler struct {
	lifecycle orderLifecycle
}

func NewCompleteOrderCommandHandler(orders ports.OrderRepository, opts ...Option) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		lifecycle: orderLifecycle{orders: orders, options: newOptions(opts)},
	}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(), lifecycleStep{
		name:  "CompleteOrder",
		apply: (*order.Order).MarkCompleted,
	})
}
