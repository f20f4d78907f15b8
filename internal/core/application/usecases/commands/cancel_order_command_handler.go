package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and tells the customer.
//
// A Completed order is rejected with errs.ErrInvalidOrder. This is the only
// transition the handler checks itself instead of relying on the order's
// no-op behaviour. Cancelling an already cancelled order saves it unchanged
// and sends nothing.
type CancelOrderCommandHandler struct {
	lifecycle orderLifecycle
	notifier  ports.Notifier
}

func NewCancelOrderCommandHandler(orders ports.OrderRepository, notifier ports.Notifier, opts ...Option) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		lifecycle: orderLifecycle{orders: orders, options: newOptions(opts)},
		notifier:  notifier,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(), lifecycleStep{
		name:   "CancelOrder",
		guard:  rejectCompleted,
		apply:  (*order.Order).Cancel,
		event:  ports.EventOrderCancelled,
		notify: h.notifier.NotifyOrderCancelled,
	})
}

func rejectCompleted(o *order.Order) error {
	if o.Status() == order.Completed {
		return errs.NewInvalidOrderError("Cannot cancel completed order")
	}
	return nil
}
