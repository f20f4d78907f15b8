// Package queries contains the read-only order operations and price quotes.
//
// Reads go through ports.OrderRepository. A missing order is reported as
// errs.ErrOrderNotFound and any other store failure as errs.ErrStorageFailed.
// Empty lists are valid results.
package queries
