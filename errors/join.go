package errors

import (
	stdErrors "errors"
)

// Some of the code here is inspired(or taken from) by:
//   (a) https://github.com/golang/go/blob/go1.20.14/src/errors/join.go whose license(BSD 3-Clause) can be found here: https://github.com/golang/go/blob/go1.20.14/LICENSE

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
// Join returns nil if every value in errs is nil.
//
// It keeps the stack trace of the first non-nil error that has one, otherwise it records a new one.
// [Is] and [As] see every one of the joined errors.
func Join(errs ...error) error {
	joined := stdErrors.Join(errs...)
	if joined == nil {
		return nil
	}

	for _, e := range errs {
		if ef, ok := e.(*stackError); ok {
			return &stackError{err: joined, stack: ef.stack}
		}
	}

	return wrap(joined, 3)
}
