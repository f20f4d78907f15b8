package commands

import (
	"context"
	"errors"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func loadOrder(ctx context.Context, repository ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	o, err := repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewOrderNotFoundError(id)
		}
		return nil, errs.NewStorageFailedError("find", err)
	}
	return o, nil
}

type notifyFunc func(ctx context.Context, o *order.Order) error

// notify delivers a best-effort notification. A failure is logged and
// returned as a warning, never as an error.
func notify(
	ctx context.Context,
	logger *slog.Logger,
	event ports.NotificationEvent,
	send notifyFunc,
	o *order.Order,
) []error {
	err := send(ctx, o)
	if err == nil {
		return nil
	}

	var notificationErr *ports.NotificationError
	if !errors.As(err, &notificationErr) {
		err = ports.NewNotificationError(event, err)
	}
	logger.WarnContext(ctx, "Failed to notify customer",
		"order_id", o.ID().String(),
		"event", string(event),
		"error", err,
	)
	trace.SpanFromContext(ctx).AddEvent("notification failed")
	return []error{err}
}

func fail(span trace.Span, err error) (Outcome, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return Outcome{}, err
}
