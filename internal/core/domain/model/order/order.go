package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a customer's purchase: a customer snapshot,
// the priced items, the lifecycle status and, once paid, the payment id.
//
// Order follows these invariants:
//   - id, customer, items, createdAt and totalPrice never change after construction
//   - totalPrice is the sum of item subtotals at construction and is never recomputed
//   - paymentID is set by MarkPaid only
//   - status changes only through the transition methods
//
// Order is not safe for concurrent mutation. Command handlers serialise access
// per order id when an OrderLocker is configured.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the snapshot copied when the order was placed
	customer customer.Customer

	// items are the line items in the order they were requested
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the construction instant
	createdAt time.Time

	// totalPrice is the sum of item subtotals
	totalPrice kernel.Money

	// paymentID is empty until MarkPaid
	paymentID string

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order and computes its total once.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - c: customer snapshot (must be constructed)
//   - items: at least one constructed item
//   - createdAt: creation instant (must not be zero)
//
// Example:
//
//	latte, _ := order.NewItem("Latte", "Medium latte", kernel.MustMoney("3.50"), 1)
//	o, err := order.NewOrder(kernel.NewUUID(), alice, []order.Item{latte}, clock.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	o.TotalPrice() // 3.50
func NewOrder(id kernel.UUID, c customer.Customer, items []Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(c),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.totalPrice = sumItems(o.items)
	return o, nil
}

// RestoreOrder rebuilds an order read from a store. The stored total is kept
// as is, and the status must agree with the presence of a payment id.
func RestoreOrder(
	id kernel.UUID,
	c customer.Customer,
	items []Item,
	status Status,
	createdAt time.Time,
	totalPrice kernel.Money,
	paymentID string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(c),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		o.setStatus(status, paymentID),
	); err != nil {
		return nil, err
	}

	o.totalPrice = totalPrice
	o.paymentID = paymentID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer snapshot.
func (o *Order) Customer() customer.Customer {
	return o.customer
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the construction instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalPrice returns the total computed at construction.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// PaymentID returns the payment id and whether the order was paid.
func (o *Order) PaymentID() (string, bool) {
	return o.paymentID, o.paymentID != ""
}

// Clone returns an independent copy, used by stores that must not share
// mutable state with callers.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = slices.Clone(o.items)
	return &clone
}

// MarkPaid records the payment and moves the order to Paid regardless of its
// current status. It always reports true.
func (o *Order) MarkPaid(paymentID string) bool {
	o.status = Paid
	o.paymentID = paymentID
	return true
}

// MarkPreparing moves a Paid order to Preparing and reports whether it did.
func (o *Order) MarkPreparing() bool {
	return o.apply(o.status.Prepare)
}

// MarkReady moves a Preparing order to Ready and reports whether it did.
func (o *Order) MarkReady() bool {
	return o.apply(o.status.MakeReady)
}

// MarkCompleted moves a Ready order to Completed and reports whether it did.
func (o *Order) MarkCompleted() bool {
	return o.apply(o.status.Complete)
}

// Cancel moves any order that is not Completed to Cancelled and reports
// whether the status changed.
func (o *Order) Cancel() bool {
	return o.apply(o.status.Cancel)
}

func (o *Order) apply(transition func() (Status, bool)) bool {
	next, ok := transition()
	o.status = next
	return ok
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(c customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status, paymentID string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHavePayment(strings.TrimSpace(paymentID) != ""); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumItems(items []Item) kernel.Money {
	total := kernel.Zero()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
