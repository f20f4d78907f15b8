package ports

import (
	"context"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
)

// PaymentErrorKind classifies payment failures.
type PaymentErrorKind int

const (
	InsufficientFunds PaymentErrorKind = iota + 1
	InvalidInstrument
	ProcessingFailed
	NetworkError
)

func (k PaymentErrorKind) String() string {
	switch k {
	case InsufficientFunds:
		return "insufficient funds"
	case InvalidInstrument:
		return "invalid payment instrument"
	case ProcessingFailed:
		return "processing failed"
	case NetworkError:
		return "network error"
	default:
		return "unknown payment error"
	}
}

// PaymentError is the only error type a PaymentProcessor returns.
type PaymentError struct {
	Kind   PaymentErrorKind
	Detail string
}

func NewPaymentError(kind PaymentErrorKind, detail string) *PaymentError {
	return &PaymentError{Kind: kind, Detail: detail}
}

func (e *PaymentError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is matches another *PaymentError of the same kind, so
// errors.Is(err, &PaymentError{Kind: InsufficientFunds}) works regardless of detail.
func (e *PaymentError) Is(target error) bool {
	t, ok := target.(*PaymentError)
	return ok && t.Kind == e.Kind
}

// PaymentProcessor captures a payment and returns its id.
//
// Implementations must not charge twice for repeated identical calls and must
// not touch order state.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, amount kernel.Money) (string, error)

	// MethodName is a human readable name such as "Cash".
	MethodName() string
}
