package commands

import "coffeeshop/internal/core/domain/model/order"

// Outcome is the result of a successful command.
type Outcome struct {
	Order *order.Order

	// Transitioned is false when the requested transition did not apply to
	// the order's status and nothing changed. Lifecycle commands still save
	// such an order but do not notify the customer about it.
	Transitioned bool

	// Warnings holds best-effort failures, such as a notification that could
	// not be delivered.
	Warnings []error
}
