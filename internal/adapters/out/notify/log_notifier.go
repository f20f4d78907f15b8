// Package notify holds the Notifier implementations. LogNotifier writes a
// structured log record per event, KafkaNotifier publishes OrderEvent
// messages and Fanout delivers to several notifiers at once.
package notify

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) NotifyOrderPlaced(ctx context.Context, o *order.Order) error {
	n.log(ctx, ports.EventOrderPlaced, o)
	return nil
}

func (n *LogNotifier) NotifyOrderReady(ctx context.Context, o *order.Order) error {
	n.log(ctx, ports.EventOrderReady, o)
	return nil
}

func (n *LogNotifier) NotifyOrderCancelled(ctx context.Context, o *order.Order) error {
	n.log(ctx, ports.EventOrderCancelled, o)
	return nil
}

func (n *LogNotifier) log(ctx context.Context, event ports.NotificationEvent, o *order.Order) {
	n.logger.InfoContext(ctx, "Customer notified",
		"event", string(event),
		"order_id", o.ID().String(),
		"customer_email", o.Customer().Email(),
		"status", o.Status().String(),
		"total", o.TotalPrice().String(),
	)
}
