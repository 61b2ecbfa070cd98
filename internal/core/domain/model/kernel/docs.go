// Package kernel provides the value objects shared across the tours domain.
//
// The package includes:
//   - Email: a syntactically validated email address
//   - Text helpers: RequiredText and OptionalText trim input and enforce length limits
//
// Every constructor reports failures as field errors from package errs, keyed by
// the request field name, so callers can join them and surface one
// ValidationError per request.
package kernel
