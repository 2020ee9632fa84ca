// Package errs wraps github.com/cockroachdb/errors for the ambient layer
// only: config loading, profiler bootstrap, HTTP request decoding. Protocol
// errors (matching.Kind and matching.Error) stay plain typed values in
// internal/matching — their exact message text is part of the wire
// contract and must not gain a stack-trace-annotated prefix.
package errs

import "github.com/cockroachdb/errors"

// Wrap annotates err with msg and a stack trace, or returns nil if err is
// nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// New constructs a stack-trace-carrying error for the ambient layer.
func New(msg string) error {
	return errors.New(msg)
}

// Newf is the formatted form of New.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}
