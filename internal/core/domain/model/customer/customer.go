// Package customer holds the customer snapshot copied into every order.
package customer

import (
	"errors"
	"net/mail"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable identity snapshot: name, email and an optional phone.
// Orders keep their own copy, so later changes to a customer never affect
// orders already placed.
type Customer struct {
	id    kernel.UUID
	name  string
	email string
	phone *string

	guard guard.ConstructorGuard
}

// NewCustomer validates and builds a snapshot. A nil or blank phone means
// no phone was given.
func NewCustomer(id kernel.UUID, name, email string, phone *string) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return Customer{}, err
	}

	if phone != nil && strings.TrimSpace(*phone) != "" {
		p := strings.TrimSpace(*phone)
		c.phone = &p
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) ID() kernel.UUID {
	return c.id
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

// Phone returns the phone number and whether one was given.
func (c Customer) Phone() (string, bool) {
	if c.phone == nil {
		return "", false
	}
	return *c.phone, true
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}
