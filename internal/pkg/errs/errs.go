package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns an error with a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, preserving the original chain. Returns nil for
// a nil err so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}
