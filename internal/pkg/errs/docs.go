// Package errs provides the error taxonomy shared by the restaurant service.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input that
//     failed validation (surfaced as 400 by the HTTP adapter)
//   - ObjectNotFoundError: a referenced menu item or order does not exist (404)
//   - ObjectIsInUseError: an object cannot be removed while others reference it (409)
//
// Every type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel, so callers
//     classify failures with errors.Is
//
// Errors coming from the store or the driver are not wrapped in these types;
// they propagate unchanged and are reported as internal failures.
package errs
