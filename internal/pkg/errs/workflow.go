package errs

import (
	"errors"
	"fmt"
)

// Workflow sentinels. A failure of the order workflow itself matches exactly
// one of them through errors.Is. Commands and queries that were not built
// through their constructors fail with their own IsNotConstructed error
// instead, which matches none of them.
var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrPaymentFailed = errors.New("payment failed")
	ErrStorageFailed = errors.New("storage failed")
	ErrOrderNotFound = errors.New("order not found")
)

// InvalidOrderError rejects a request before any collaborator is contacted,
// or a transition the workflow refuses outright.
type InvalidOrderError struct {
	Reason string
}

func NewInvalidOrderError(reason string) *InvalidOrderError {
	return &InvalidOrderError{Reason: reason}
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidOrder, e.Reason)
}

func (e *InvalidOrderError) Unwrap() error {
	return ErrInvalidOrder
}

// PaymentFailedError wraps the error reported by the payment processor.
type PaymentFailedError struct {
	Cause error
}

func NewPaymentFailedError(cause error) *PaymentFailedError {
	return &PaymentFailedError{Cause: cause}
}

func (e *PaymentFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", ErrPaymentFailed, e.Cause)
	}
	return ErrPaymentFailed.Error()
}

func (e *PaymentFailedError) Unwrap() []error {
	return []error{ErrPaymentFailed, e.Cause}
}

// StorageFailedError wraps an order store failure. Operation names the store
// call that failed (save, find, update, list).
type StorageFailedError struct {
	Operation string
	Cause     error
}

func NewStorageFailedError(operation string, cause error) *StorageFailedError {
	return &StorageFailedError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StorageFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorageFailed, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageFailed, e.Operation)
}

func (e *StorageFailedError) Unwrap() []error {
	return []error{ErrStorageFailed, e.Cause}
}

// OrderNotFoundError is returned when the store has no order with ID.
type OrderNotFoundError struct {
	ID any
}

func NewOrderNotFoundError(id any) *OrderNotFoundError {
	return &OrderNotFoundError{ID: id}
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", ErrOrderNotFound, e.ID)
}

func (e *OrderNotFoundError) Unwrap() error {
	return ErrOrderNotFound
}
