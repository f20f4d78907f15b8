package commands

import (
	"context"

	"coffeeshop/internal/core/application/recovery"
	"coffeeshop/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// ReconcileUnstoredOrdersCommandHandler drains a recovery.RetryQueue into the
// order repository. It is run on a schedule by jobs.ReconciliationJob.
type ReconcileUnstoredOrdersCommandHandler struct {
	queue  *recovery.RetryQueue
	orders ports.OrderRepository
}

func NewReconcileUnstoredOrdersCommandHandler(
	queue *recovery.RetryQueue,
	orders ports.OrderRepository,
) ReconcileUnstoredOrdersCommandHandler {
	return ReconcileUnstoredOrdersCommandHandler{queue: queue, orders: orders}
}

// Handle makes one pass over the queue.
func (h ReconcileUnstoredOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileUnstoredOrdersCommand,
) (recovery.DrainReport, error) {
	if err := cmd.Validate(); err != nil {
		return recovery.DrainReport{}, err
	}
	if h.queue.Len() == 0 {
		return recovery.DrainReport{}, nil
	}

	ctx, span := tracer.Start(ctx, "ReconcileUnstoredOrders")
	defer span.End()

	report := h.queue.Drain(ctx, h.orders)
	span.SetAttributes(
		attribute.Int("reconcile.stored", report.Stored),
		attribute.Int("reconcile.requeued", report.Requeued),
		attribute.Int("reconcile.gave_up", report.GaveUp),
	)
	return report, nil
}
