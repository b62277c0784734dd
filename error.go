package linkscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// EIO is distinct from the grammar codes so callers can tell a failed
// read apart from a malformed document.
const (
	EINTERNAL    = "internal"          // unexpected failure
	EINVALID     = "invalid"           // invalid input or arguments
	EIO          = "io"                // read/open failure
	ESYNTAX      = "syntax"            // malformed markup (tokenizer)
	EUNKNOWNTYPE = "unknown_type"      // unrecognized xlink:type value
	EMISSINGATTR = "missing_attribute" // xlink element missing a required attribute
	ENESTING     = "nesting"           // xlink element in an illegal position
)

// Error represents an application-specific error. Errors can be
// unwrapped to inspect the underlying cause.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// Underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("linkscrape error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of the root error, if available.
// Otherwise returns EINTERNAL. Returns an empty string for nil errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Otherwise returns a generic message. Returns an empty string for nil
// errors.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error with the given code whose message and
// cause come from err.
func WrapError(code string, err error) *Error {
	return &Error{
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}
