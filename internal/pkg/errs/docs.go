// Package errs provides standardized error types for the coffee shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Generic validation errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError and ObjectNotFoundError
//   - Order workflow errors: InvalidOrderError, PaymentFailedError,
//     StorageFailedError and OrderNotFoundError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Workflow errors that carry a cause unwrap to both the sentinel and the cause,
// so callers can match the workflow category and the collaborator failure with
// errors.Is and errors.As.
package errs
