// Package api is the HTTP client of the Mini-Reddit REST API.
//
// Every endpoint has one method on Client. Calls honor the context and the
// per-request timeout given to New.
//
// # Error Handling
//
// A non-2xx answer is returned as *Error carrying the status code and the
// server's message. *Error matches common.ErrorNotFound for 404 and
// common.ErrorValidation for 400 under errors.Is. Transport failures wrap
// ErrUnavailable.
package api
