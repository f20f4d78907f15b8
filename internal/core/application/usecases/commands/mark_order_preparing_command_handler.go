package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// MarkOrderPreparingCommandHandler moves a Paid order to Preparing.
// Orders in any other status are saved unchanged. No notification is sent.
type MarkOrderPreparingCommandHandler struct {
	lifecycle orderLifecycle
}

func NewMarkOrderPreparingCommandHandler(orders ports.OrderRepository, opts ...Option) MarkOrderPreparingCommandHandler {
	return MarkOrderPreparingCommandHandler{
		lifecycle: orderLifecycle{orders: orders, options: newOptions(opts)},
	}
}

func (h MarkOrderPreparingCommandHandler) Handle(ctx context.Context, cmd MarkOrderPreparingCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(), lifecycleStep{
		name:  "MarkOrderPreparing",
		apply: (*order.Order).MarkPreparing,
	})
}
