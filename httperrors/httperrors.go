// Package httperrors provides the structured error written to clients when
// a route fails
package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/en9inerd/go-svrouter/httpjson"
)

// Error represents a structured HTTP error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// WriteJSON writes the error as JSON to the response
func (e *Error) WriteJSON(w http.ResponseWriter) {
	httpjson.WriteJSONWithStatus(w, e.Code, e)
}

// NewError creates a new HTTP error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithDetails creates a new HTTP error with details
func NewErrorWithDetails(code int, message, details string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewErrorWithErr creates a new HTTP error wrapping an underlying error
func NewErrorWithErr(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
		Details: err.Error(),
	}
}

// FromError returns err as an *Error. If err does not wrap one, it is
// wrapped in a new *Error with the given code and that code's status text.
// Details are withheld for 5xx codes so internal errors are not exposed.
func FromError(code int, err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	if code >= http.StatusInternalServerError || err == nil {
		return &Error{Code: code, Message: http.StatusText(code), Err: err}
	}
	return NewErrorWithErr(code, http.StatusText(code), err)
}

// IsHTTPError checks if an error is an HTTP Error
func IsHTTPError(err error) bool {
	var he *Error
	return errors.As(err, &he)
}
