package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// lifecycleStep describes one read-transition-update-notify operation.
type lifecycleStep struct {
	name  string
	guard func(*order.Order) error
	apply func(*order.Order) bool

	event  ports.NotificationEvent
	notify notifyFunc
}

type orderLifecycle struct {
	orders  ports.OrderRepository
	options options
}

// run updates the order even when the transition is a no-op and notifies
// only when the status changed.
func (l orderLifecycle) run(ctx context.Context, id kernel.UUID, step lifecycleStep) (Outcome, error) {
	ctx, span := tracer.Start(ctx, step.name, trace.WithAttributes(attribute.String("order.id", id.String())))
	defer span.End()

	unlock := l.options.lock(id)
	defer unlock()

	current, err := loadOrder(ctx, l.orders, id)
	if err != nil {
		return fail(span, err)
	}

	if step.guard != nil {
		if err = step.guard(current); err != nil {
			return fail(span, err)
		}
	}

	changed := step.apply(current)
	span.SetAttributes(
		attribute.Bool("order.transitioned", changed),
		attribute.String("order.status", current.Status().String()),
	)

	if err = l.orders.Update(ctx, current); err != nil {
		return fail(span, errs.NewStorageFailedError("update", err))
	}

	outcome := Outcome{Order: current, Transitioned: changed}
	if changed && step.notify != nil {
		outcome.Warnings = notify(ctx, l.options.logger, step.event, step.notify, current)
	}
	return outcome, nil
}
