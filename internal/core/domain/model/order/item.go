package order

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced line of an order. The unit price is resolved before the
// order is placed and copied into the item, so later menu changes never
// alter existing orders.
//
// Quantity is stored as given. Rejecting quantities below one is left to the
// request edge (the HTTP schema enforces it).
type Item struct {
	name        string
	description string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewItem builds a line item. Name is required.
func NewItem(name, description string, unitPrice kernel.Money, quantity int) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}

	return Item{
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Description() string {
	return i.description
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
