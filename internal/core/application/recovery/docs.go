// Package recovery decides what happens to an order whose payment was captured
// but whose first save failed.
//
// Two strategies implement ports.RecoveryStrategy:
//
//   - ManualReconciliation logs everything an operator needs to store the
//     order by hand or refund the payment.
//   - RetryQueue keeps the paid order in memory and re-attempts the save each
//     time Drain runs. Orders that exhaust their attempts, or arrive when the
//     queue is full, are passed to a fallback strategy.
//
// Example:
//
//	manual := recovery.NewManualReconciliation(logger)
//	queue, err := recovery.NewRetryQueue(100, 5, manual, logger)
//	if err != nil {
//		return err
//	}
//
//	// after a cron tick
//	report := queue.Drain(ctx, orderRepository)
package recovery
