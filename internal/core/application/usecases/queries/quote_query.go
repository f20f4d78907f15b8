package queries

import (
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrQuoteQueryIsNotConstructed = errors.New(
	"QuoteQuery must be created via NewQuoteQuery constructor",
)

// QuoteQuery prices a basket for a customer before it is ordered. The email
// decides whether the loyalty discount applies; it may be empty for a guest.
type QuoteQuery struct {
	email string
	items []order.Item

	guard guard.ConstructorGuard
}

func NewQuoteQuery(email string, items []order.Item) (QuoteQuery, error) {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return QuoteQuery{}, fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	if len(items) == 0 {
		return QuoteQuery{}, errs.NewValueIsRequiredError("items")
	}

	return QuoteQuery{
		email: strings.TrimSpace(email),
		items: append([]order.Item(nil), items...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteQuery) Validate() error {
	return q.guard.Validate(ErrQuoteQueryIsNotConstructed)
}

func (q QuoteQuery) Email() string {
	return q.email
}

func (q QuoteQuery) Items() []order.Item {
	return append([]order.Item(nil), q.items...)
}
