// Package kernel provides the shared value objects of the coffee shop domain.
//
// The package includes:
//   - UUID: identifier for orders and customers, wrapping github.com/google/uuid
//   - Money: exact decimal amount backed by github.com/shopspring/decimal
//
// Both are immutable values and safe to share between goroutines.
package kernel
