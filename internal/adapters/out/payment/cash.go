// Package payment holds the PaymentProcessor implementations: cash at the
// counter and credit cards, optionally authorised by a remote gateway.
package payment

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

var _ ports.PaymentProcessor = (*Cash)(nil)

// Cash always succeeds and issues a CASH-<uuid> receipt id.
type Cash struct{}

func NewCash() *Cash {
	return &Cash{}
}

func (c *Cash) ProcessPayment(ctx context.Context, amount kernel.Money) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ports.NewPaymentError(ports.NetworkError, err.Error())
	}
	if amount.IsNegative() {
		return "", ports.NewPaymentError(ports.ProcessingFailed, "amount must not be negative")
	}
	return "CASH-" + kernel.NewUUID().String(), nil
}

func (c *Cash) MethodName() string {
	return "Cash"
}
