// Package validation binds and validates request data.
//
// It uses the `validator` library to enforce rules (like required fields)
// defined in struct tags and turns failures into an *errs.HTTPError the
// client can understand.
package validation
