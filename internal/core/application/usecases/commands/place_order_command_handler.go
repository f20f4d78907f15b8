package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PlaceOrderCommandHandler runs the checkout workflow:
// validate, charge, mark paid, save, notify.
//
// Nothing is saved before the payment succeeds. When the save fails after the
// payment went through, the paid order goes to the recovery strategy and the
// caller still gets errs.ErrStorageFailed. Once the payment has been requested
// the workflow runs to the end even if ctx is cancelled.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(orderRepository, payment.NewCash(), notifier,
//	    WithLogger(logger), WithRecovery(retryQueue))
//	outcome, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPaymentFailed) {
//	    // nothing was stored
//	}
type PlaceOrderCommandHandler struct {
	orders   ports.OrderRepository
	payments ports.PaymentProcessor
	notifier ports.Notifier
	options  options
}

func NewPlaceOrderCommandHandler(
	orders ports.OrderRepository,
	payments ports.PaymentProcessor,
	notifier ports.Notifier,
	opts ...Option,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orders:   orders,
		payments: payments,
		notifier: notifier,
		options:  newOptions(opts),
	}
}

// Handle returns the paid order on success. The outcome carries notification
// warnings, if any.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	ctx, span := tracer.Start(ctx, "PlaceOrder", trace.WithAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.Int("order.items", len(cmd.Items())),
	))
	defer span.End()

	if len(cmd.Items()) == 0 {
		return fail(span, errs.NewInvalidOrderError("Order must contain at least one item"))
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Items(), h.options.clock.Now())
	if err != nil {
		return fail(span, errs.NewInvalidOrderError(err.Error()))
	}
	span.SetAttributes(attribute.String("order.total", placed.TotalPrice().String()))

	ctx = context.WithoutCancel(ctx)

	paymentID, err := h.payments.ProcessPayment(ctx, placed.TotalPrice())
	if err != nil {
		return fail(span, errs.NewPaymentFailedError(err))
	}
	if paymentID == "" {
		return fail(span, errs.NewPaymentFailedError(
			ports.NewPaymentError(ports.ProcessingFailed, "processor returned an empty payment id"),
		))
	}
	placed.MarkPaid(paymentID)
	span.SetAttributes(
		attribute.String("payment.id", paymentID),
		attribute.String("payment.method", h.payments.MethodName()),
	)

	if err = h.orders.Save(ctx, placed); err != nil {
		storageErr := errs.NewStorageFailedError("save", err)
		if recoverErr := h.options.recovery.Recover(ctx, placed.Clone(), storageErr); recoverErr != nil {
			h.options.logger.ErrorContext(ctx, "Failed to hand unstored paid order to recovery",
				"order_id", placed.ID().String(),
				"payment_id", paymentID,
				"error", recoverErr,
			)
		}
		return fail(span, storageErr)
	}

	warnings := notify(ctx, h.options.logger, ports.EventOrderPlaced, h.notifier.NotifyOrderPlaced, placed)

	return Outcome{Order: placed, Transitioned: true, Warnings: warnings}, nil
}
