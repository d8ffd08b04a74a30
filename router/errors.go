package router

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrInvalidArgument is matched by every registration error.
var ErrInvalidArgument = errors.New("router: invalid argument")

// ArgumentError is raised (as a panic value) when a route is registered with
// a bad method, path, callback or middleware.
type ArgumentError struct {
	Param  string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: invalid %s: %s: %v", e.Param, e.Reason, e.Err)
	}
	return fmt.Sprintf("router: invalid %s: %s", e.Param, e.Reason)
}

// Unwrap returns the underlying error
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidArgument as a match.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(param, reason string) *ArgumentError {
	return &ArgumentError{Param: param, Reason: reason}
}

// HandlerFault carries a panic recovered from a route callback or mounted
// middleware.
type HandlerFault struct {
	Value any
	Stack []byte
}

func newHandlerFault(v any) *HandlerFault {
	return &HandlerFault{Value: v, Stack: debug.Stack()}
}

// Error implements the error interface
func (f *HandlerFault) Error() string {
	return fmt.Sprintf("router: handler panic: %v", f.Value)
}

// Unwrap returns the panic value when it is an error.
func (f *HandlerFault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}
