// Package errs provides standardized error types for the kitchen-orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the order workflow:
//   - ObjectNotFoundError: an unknown user, order, or ingredient reference
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - ActionIsForbiddenError: eligibility or capability guard failures
//   - ConflictError: a request colliding with existing state (duplicate active order)
//   - TransientError: storage contention or timeout, safe to retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Guard failures (NotFound, Forbidden, Conflict, Invalid) are terminal for the
// request and are surfaced to callers unchanged. Transient failures may be
// retried a bounded number of times before surfacing.
package errs
