// Package errors implements functions to manipulate errors.
// Errors created or wrapped here carry the call stack at the point they were created,
// which is printed when the error is formatted with `%+v`.
package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// The approach here is borrowed from:
//   (a) https://github.com/golang/pkgsite whose license(BSD 3-Clause "New") can be found here: https://github.com/golang/pkgsite/blob/24f94ffc546bde6aae0552efa6a940041d9d28e1/LICENSE
//   (b) https://www.komu.engineer/blogs/08/golang-stacktrace

// stackDepth is the number of frames recorded.
// Callers of b58ify are rarely deep, four frames is enough to point at the offending call site.
const stackDepth = 4

// stackError is an error that contains a stack trace.
type stackError struct {
	stack [stackDepth]uintptr
	err   error
}

func (e *stackError) Error() string {
	return e.err.Error() // ignore the stack
}

func (e *stackError) Unwrap() error {
	return e.err
}

// New returns an error with the supplied message. New also records the stack trace at the point it was called.
func New(text string) error {
	return wrap(&textError{s: text}, 3)
}

// Wrap returns err, capturing a stack trace.
// If err already carries a stack trace, it is returned as is.
// Wrap returns nil if err is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*stackError); ok {
		return err
	}
	return wrap(err, 3)
}

func wrap(err error, skip int) *stackError {
	stack := [stackDepth]uintptr{}
	// skip 0 identifies the frame for `runtime.Callers` itself and
	// skip 1 identifies the caller of `runtime.Callers`(ie of `wrap`).
	_ = runtime.Callers(skip, stack[:])

	return &stackError{stack: stack, err: err}
}

func (e *stackError) getStackTrace() string {
	var trace strings.Builder
	frames := runtime.CallersFrames(e.stack[:])
	for {
		frame, more := frames.Next()
		// we cant use something like "go/src/runtime/" since it will break for programs built using `go build -trimpath`
		if frame.File != "" && !strings.Contains(frame.File, "runtime/") {
			trace.WriteString(fmt.Sprintf("\n%s:%d", frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return trace.String()
}

// Format implements the fmt.Formatter interface
func (e *stackError) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = io.WriteString(f, e.Error())
			_, _ = io.WriteString(f, e.getStackTrace())
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	}
}

// StackTrace returns the stack trace contained in err, if it, or any error it wraps, carries one.
// Otherwise it returns an empty string.
func StackTrace(err error) string {
	var sterr *stackError
	if !As(err, &sterr) {
		return ""
	}
	return sterr.getStackTrace()
}

// textError is like the one returned by the standard library's errors.New
type textError struct {
	s string
}

func (e *textError) Error() string {
	return e.s
}
