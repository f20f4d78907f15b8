package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// RecoveryStrategy takes over an order whose payment was captured but whose
// first save failed. The order is Paid and carries its payment id.
// A returned error means the hand-off itself failed and is only logged.
type RecoveryStrategy interface {
	Recover(ctx context.Context, paid *order.Order, cause error) error
}
