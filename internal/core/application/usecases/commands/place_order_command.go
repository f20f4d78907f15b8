package commands

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand asks to charge a customer for a basket of priced items
// and record the order.
//
// An empty basket is accepted here and rejected by the handler with
// errs.ErrInvalidOrder, before any payment is attempted.
//
// Example:
//
//	latte, _ := menu.Item(coffee, 2)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), alice, []order.Item{latte})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	outcome, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer customer.Customer
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order id, the customer and every item.
func NewPlaceOrderCommand(orderID kernel.UUID, c customer.Customer, items []order.Item) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomer(c),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Customer() customer.Customer {
	return c.customer
}

// Items returns a copy of the basket.
func (c PlaceOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}

	c.customer = cust
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
