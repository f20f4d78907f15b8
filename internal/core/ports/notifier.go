package ports

import (
	"context"
	"fmt"

	"coffeeshop/internal/core/domain/model/order"
)

// NotificationEvent names the lifecycle event a customer is told about.
type NotificationEvent string

const (
	EventOrderPlaced    NotificationEvent = "order_placed"
	EventOrderReady     NotificationEvent = "order_ready"
	EventOrderCancelled NotificationEvent = "order_cancelled"
)

// NotificationError is returned by notifiers. Callers treat it as a warning.
type NotificationError struct {
	Event NotificationEvent
	Cause error
}

func NewNotificationError(event NotificationEvent, cause error) *NotificationError {
	return &NotificationError{Event: event, Cause: cause}
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification %s failed: %v", e.Event, e.Cause)
}

func (e *NotificationError) Unwrap() error {
	return e.Cause
}

// Notifier tells customers about order events. Its failures never fail the
// business operation that triggered them.
type Notifier interface {
	NotifyOrderPlaced(ctx context.Context, o *order.Order) error
	NotifyOrderReady(ctx context.Context, o *order.Order) error
	NotifyOrderCancelled(ctx context.Context, o *order.Order) error
}
