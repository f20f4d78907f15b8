// Package commands contains the order workflow operations that change state.
//
// Every operation is a command built through its constructor and a handler
// with a single Handle(ctx, cmd) method. Handlers talk to collaborators only
// through the ports package: the order repository, the payment processor, the
// notifier and the recovery strategy.
//
// # Results
//
// Handlers return an Outcome. Outcome.Transitioned reports whether the order
// status actually changed, because the order state machine silently ignores
// transitions that do not apply. Outcome.Warnings carries notification
// failures, which never turn into the error return.
//
// # Errors
//
// Failures are typed errors from the errs package and can be matched with
// errors.Is:
//
//   - errs.ErrInvalidOrder: empty basket, or cancelling a completed order
//   - errs.ErrPaymentFailed: the payment processor refused, wraps ports.PaymentError
//   - errs.ErrStorageFailed: the repository failed, wraps its error
//   - errs.ErrOrderNotFound: no order with the requested id
//
// # Concurrency
//
// Lifecycle handlers load, transition and update an order without holding a
// lock, so two callers racing on one order can lose an update. Pass
// WithOrderLocker(NewKeyedMutex()) to serialise them per order id.
package commands
