// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For an illegal order status change
//   - InvalidPreconditionError: For an operation attempted in the wrong state
//   - CapabilityUnavailableError: For a data store operation the deployment does not provide
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// InvalidTransition and InvalidPrecondition are contract violations and are
// returned to the caller as-is, never retried. CapabilityUnavailable is always
// recoverable by the caller through a degraded result.
package errs
