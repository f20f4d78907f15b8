package ports

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// Order store failures. Adapters wrap the underlying driver error with
// fmt.Errorf("%w: ...") so callers can match the category with errors.Is.
// A lookup or update miss is reported as errs.ObjectNotFoundError.
var (
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrSaveFailed         = errors.New("save failed")
	ErrLoadFailed         = errors.New("load failed")
)

// OrderRepository is the order store contract. Implementations must be safe
// for concurrent use and must not share mutable *order.Order values with
// callers: every returned order is the caller's own copy.
type OrderRepository interface {
	// Save inserts a new order.
	// Fails with ErrOrderAlreadyExists when the id is taken, ErrSaveFailed otherwise.
	Save(ctx context.Context, aggregate *order.Order) error

	// FindByID returns the order with id, errs.ObjectNotFoundError when there
	// is none, or ErrLoadFailed.
	FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByCustomerEmail returns the customer's orders, oldest first.
	// An empty result is not an error.
	FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)

	// ListAll returns every order, oldest first. An empty result is not an error.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// Update replaces a stored order. Fails with errs.ObjectNotFoundError when
	// the id is unknown, ErrSaveFailed otherwise.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and reports whether it existed.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
