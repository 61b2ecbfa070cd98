// Package errs provides the error types shared by the tours application.
//
// Field-level errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//
// Request and workflow errors:
//   - ObjectNotFoundError: a referenced tour, location or booking is absent
//   - ValidationError: every violated field of a request, as field/reason pairs
//   - PersistenceError: a write could not be durably recorded
//   - DispatchError: a notification could not be rendered or delivered
//
// Each type pairs a sentinel (ErrObjectNotFound, ErrValidation, ...) returned
// by Unwrap, so callers classify errors with errors.Is and read details with
// errors.As.
package errs
