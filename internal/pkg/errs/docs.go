// Package errs provides standardized error types for the export engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for classification
//
// ConflictError deserves a note: it marks rejections caused by a stale view
// of shared state (a bag already assigned, a manifest already locked). Such
// failures must be surfaced to the caller for a re-read, never retried
// blindly.
package errs
