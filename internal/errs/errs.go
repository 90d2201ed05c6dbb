// Package errs defines the error kinds returned by the data-access core.
//
// Store-level failures are never surfaced as bare strings. Every repository
// and service operation returns an *Error carrying a Kind, so callers can
// branch on the cause (conflict, not found, connectivity, ...) instead of
// matching messages.
package errs
