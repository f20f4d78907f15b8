// Package services provides domain services of the coffee shop that do not
// belong to a single aggregate.
//
// The package includes:
//   - PricingCalculator: tax, percentage discounts and the loyalty discount
//     used to quote a basket before it is placed as an order
package services
