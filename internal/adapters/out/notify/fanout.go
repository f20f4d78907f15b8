package notify

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

var _ ports.Notifier = Fanout(nil)

// Fanout delivers every notification to all of its notifiers, even when some
// of them fail, and joins their errors.
type Fanout []ports.Notifier

func NewFanout(notifiers ...ports.Notifier) Fanout {
	return Fanout(notifiers)
}

func (f Fanout) NotifyOrderPlaced(ctx context.Context, o *order.Order) error {
	return f.each(func(n ports.Notifier) error { return n.NotifyOrderPlaced(ctx, o) })
}

func (f Fanout) NotifyOrderReady(ctx context.Context, o *order.Order) error {
	return f.each(func(n ports.Notifier) error { return n.NotifyOrderReady(ctx, o) })
}

func (f Fanout) NotifyOrderCancelled(ctx context.Context, o *order.Order) error {
	return f.each(func(n ports.Notifier) error { return n.NotifyOrderCancelled(ctx, o) })
}

func (f Fanout) each(send func(ports.Notifier) error) error {
	var failures []error
	for _, n := range f {
		if err := send(n); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
