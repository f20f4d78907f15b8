package http

import (
	"fmt"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/beverage"
	"coffeeshop/internal/core/domain/model/order"
)

func toBeverage(item BasketItem) (beverage.Beverage, error) {
	size := beverage.Medium
	if item.Size != nil {
		parsed, err := beverage.ParseSize(*item.Size)
		if err != nil {
			return nil, err
		}
		size = parsed
	}

	switch item.Type {
	case "coffee":
		shots := 0
		if item.ExtraShots != nil {
			shots = *item.ExtraShots
		}
		return beverage.NewCoffee(size, shots)
	case "tea":
		variety := ""
		if item.Variety != nil {
			variety = *item.Variety
		}
		return beverage.NewTea(size, variety)
	case "smoothie":
		return beverage.NewSmoothie(size, item.Fruits)
	default:
		return nil, fmt.Errorf("unknown beverage type %q", item.Type)
	}
}

func toOrder(o *order.Order) Order {
	c := o.Customer()
	customerID := c.ID().Bytes()
	response := Order{
		ID: o.ID().Bytes(),
		Customer: Customer{
			ID:    &customerID,
			Name:  c.Name(),
			Email: c.Email(),
		},
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		TotalPrice: o.TotalPrice().String(),
	}
	if phone, ok := c.Phone(); ok {
		response.Customer.Phone = &phone
	}
	if paymentID, ok := o.PaymentID(); ok {
		response.PaymentID = &paymentID
	}

	items := o.Items()
	response.Items = make([]OrderItem, len(items))
	for i, item := range items {
		response.Items[i] = OrderItem{
			Name:        item.Name(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().String(),
		}
	}
	return response
}

func toOrderOutcome(outcome commands.Outcome) OrderOutcome {
	response := OrderOutcome{
		Order:        toOrder(outcome.Order),
		Transitioned: outcome.Transitioned,
	}
	for _, warning := range outcome.Warnings {
		response.Warnings = append(response.Warnings, warning.Error())
	}
	return response
}
