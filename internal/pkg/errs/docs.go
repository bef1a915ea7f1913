// Package errs provides standardized error types for the food ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: a referenced user, food item, cart, or order is absent
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// HTTP handlers rely on the sentinels to map domain failures onto status codes,
// so new error types must keep the sentinel + Unwrap convention.
package errs
