package queries

import (
	"errors"
	"strings"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
	ErrListAllOrdersQueryIsNotConstructed = errors.New(
		"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery lists the orders placed with an email address.
type ListCustomerOrdersQuery struct {
	email string

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(email string) (ListCustomerOrdersQuery, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredError("email")
	}
	return ListCustomerOrdersQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) Email() string {
	return q.email
}

// ListAllOrdersQuery lists every order. It has no parameters.
type ListAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery() ListAllOrdersQuery {
	return ListAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}
