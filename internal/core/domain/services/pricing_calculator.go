package services

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// LoyaltyEvery is how often a customer earns the loyalty discount:
	// their 10th, 20th, 30th... order.
	LoyaltyEvery = 10

	// LoyaltyPercent is the loyalty discount in percent.
	LoyaltyPercent = 10
)

var hundred = decimal.NewFromInt(100)

// Quote is the price breakdown of a basket before it becomes an order.
type Quote struct {
	Subtotal        kernel.Money
	DiscountPercent decimal.Decimal
	Discount        kernel.Money
	Tax             kernel.Money
	Total           kernel.Money
}

// PricingCalculator applies tax and discounts to item subtotals.
// It has no state besides the tax rate and is safe for concurrent use.
//
// Example:
//
//	calc, _ := services.NewPricingCalculator(decimal.RequireFromString("0.08"))
//	calc.PriceWithTax(kernel.MustMoney("100")) // 108.00
type PricingCalculator struct {
	taxRate decimal.Decimal
}

// NewPricingCalculator takes the tax rate as a fraction, for example 0.08 for 8%.
func NewPricingCalculator(taxRate decimal.Decimal) (PricingCalculator, error) {
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PricingCalculator{}, errs.NewValueIsOutOfRangeError("tax rate", taxRate, 0, 1)
	}
	return PricingCalculator{taxRate: taxRate}, nil
}

func (c PricingCalculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

// Subtotal sums price times quantity over items.
func (c PricingCalculator) Subtotal(items []order.Item) kernel.Money {
	total := kernel.Zero()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// PriceWithTax adds tax to price.
func (c PricingCalculator) PriceWithTax(price kernel.Money) kernel.Money {
	return price.Scale(decimal.NewFromInt(1).Add(c.taxRate))
}

// ApplyDiscount reduces price by percent, where 10 means 10%.
func (c PricingCalculator) ApplyDiscount(price kernel.Money, percent decimal.Decimal) (kernel.Money, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("discount percent", percent, 0, 100)
	}
	return price.Scale(decimal.NewFromInt(1).Sub(percent.Div(hundred))), nil
}

// LoyaltyDiscountPercent returns LoyaltyPercent when orderCount is a positive
// multiple of LoyaltyEvery, and zero otherwise.
func (c PricingCalculator) LoyaltyDiscountPercent(orderCount int) decimal.Decimal {
	if orderCount > 0 && orderCount%LoyaltyEvery == 0 {
		return decimal.NewFromInt(LoyaltyPercent)
	}
	return decimal.Zero
}

// Quote prices items for a customer whose upcoming order is the
// orderOrdinal-th one (1 for a first order). The loyalty discount applies
// before tax and every amount is rounded to cents.
func (c PricingCalculator) Quote(items []order.Item, orderOrdinal int) (Quote, error) {
	if orderOrdinal < 1 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"order ordinal",
			fmt.Errorf("%d is not a positive order number", orderOrdinal),
		)
	}

	subtotal := c.Subtotal(items)
	percent := c.LoyaltyDiscountPercent(orderOrdinal)
	discounted, err := c.ApplyDiscount(subtotal, percent)
	if err != nil {
		return Quote{}, err
	}
	discounted = discounted.Round()
	total := c.PriceWithTax(discounted).Round()

	return Quote{
		Subtotal:        subtotal.Round(),
		DiscountPercent: percent,
		Discount:        subtotal.Round().Sub(discounted),
		Tax:             total.Sub(discounted),
		Total:           total,
	}, nil
}
