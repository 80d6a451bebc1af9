// Package errs defines the error types returned to API clients.
//
// Every failure that leaves the API is an *HTTPError so clients always get
// the same JSON shape: a machine code, a message, the status and optional
// per-field validation errors.
package errs
