// Package order provides the Order aggregate of the coffee shop and its
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the customer snapshot, items, total and status
//   - Item: a priced line item copied into the order at creation
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - Orders start Pending and move Pending -> Paid -> Preparing -> Ready -> Completed
//   - Cancelled is reachable from every status except Completed
//   - A transition requested from the wrong status is a no-op reported as false
//   - The total price is computed once, when the order is constructed
package order
