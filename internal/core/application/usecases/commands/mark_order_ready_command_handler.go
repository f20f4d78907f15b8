package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves a Preparing order to Ready and tells the
// customer. Calling it again on a Ready order saves it unchanged and sends
// nothing.
//
// Example:
//
//	handler := NewMarkOrderReadyCommandHandler(orderRepository, notifier,
//	    WithOrderLocker(NewKeyedMutex()))
//	cmd, _ := NewMarkOrderReadyCommand(orderID)
//	outcome, err := handler.Handle(ctx, cmd)
//	for _, warning := range outcome.Warnings {
//	    log.Printf("customer was not told: %v", warning)
//	}
type MarkOrderReadyCommandHandler struct {
	lifecycle orderLifecycle
	notifier  ports.Notifier
}

func NewMarkOrderReadyCommandHandler(orders ports.OrderRepository, notifier ports.Notifier, opts ...Option) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		lifecycle: orderLifecycle{orders: orders, options: newOptions(opts)},
		notifier:  notifier,
	}
}

func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(), lifecycleStep{
		name:   "MarkOrderReady",
		apply:  (*order.Order).MarkReady,
		event:  ports.EventOrderReady,
		notify: h.notifier.NotifyOrderReady,
	})
}
