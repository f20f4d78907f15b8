package recovery

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/order"
)

// ManualReconciliation flags an unstored paid order for an operator.
type ManualReconciliation struct {
	logger *slog.Logger
}

func NewManualReconciliation(logger *slog.Logger) ManualReconciliation {
	return ManualReconciliation{logger: logger.With("component", "manual_reconciliation")}
}

// Recover logs the order at ERROR level and never fails.
func (m ManualReconciliation) Recover(ctx context.Context, paid *order.Order, cause error) error {
	paymentID, _ := paid.PaymentID()
	m.logger.ErrorContext(ctx, "Payment captured but order was not stored, manual reconciliation required",
		"order_id", paid.ID().String(),
		"payment_id", paymentID,
		"amount", paid.TotalPrice().String(),
		"customer_email", paid.Customer().Email(),
		"error", cause,
	)
	return nil
}
