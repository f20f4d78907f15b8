package notify

import (
	"time"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// OrderEvent is the JSON payload published for every notification.
type OrderEvent struct {
	Event         string    `json:"event"`
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Status        string    `json:"status"`
	TotalPrice    string    `json:"total_price"`
	PaymentID     string    `json:"payment_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func newOrderEvent(event ports.NotificationEvent, o *order.Order, at time.Time) OrderEvent {
	paymentID, _ := o.PaymentID()
	return OrderEvent{
		Event:         string(event),
		OrderID:       o.ID().String(),
		CustomerName:  o.Customer().Name(),
		CustomerEmail: o.Customer().Email(),
		Status:        o.Status().String(),
		TotalPrice:    o.TotalPrice().String(),
		PaymentID:     paymentID,
		OccurredAt:    at,
	}
}
