// Package errs provides the typed errors shared by the quote estimator.
//
// Each error type pairs a sentinel (for errors.Is) with a struct carrying the
// offending parameter, and optionally the underlying cause:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is present but unusable
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//   - ObjectNotFoundError: a lookup found nothing
//
// The pricing engine itself never fails; these errors surface from the
// adapters (configuration files, HTTP input, quote request forms).
package errs
