package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, including marks attached with
// Mark. The stdlib errors.Is only follows the Unwrap chain and never sees
// marks, so sentinel checks on marked errors must go through here.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
