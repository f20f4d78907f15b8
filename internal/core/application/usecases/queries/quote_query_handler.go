package queries

import (
	"context"

	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// QuoteQueryHandler prices a basket with tax and the loyalty discount. Every
// order the customer placed before counts towards the discount, whatever its
// status.
//
// Example:
//
//	handler := NewQuoteQueryHandler(orderRepository, calculator)
//	query, _ := NewQuoteQuery("alice@example.com", items)
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.Total)
type QuoteQueryHandler struct {
	orders     ports.OrderRepository
	calculator services.PricingCalculator
}

func NewQuoteQueryHandler(orders ports.OrderRepository, calculator services.PricingCalculator) QuoteQueryHandler {
	return QuoteQueryHandler{orders: orders, calculator: calculator}
}

func (h QuoteQueryHandler) Handle(ctx context.Context, query QuoteQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	previous := 0
	if query.Email() != "" {
		orders, err := h.orders.FindByCustomerEmail(ctx, query.Email())
		if err != nil {
			return services.Quote{}, errs.NewStorageFailedError("list", err)
		}
		previous = len(orders)
	}

	return h.calculator.Quote(query.Items(), previous+1)
}
