package deptscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These codes describe the class of a failure independently of its
// human-readable message, so callers can branch on ErrorCode without
// string matching. Per-page failures (EFETCH, EPARSE, EEMPTYCONTENT)
// are recoverable: the batch skips the page and records the reason.
const (
	EINVALID      = "invalid"       // validation failed
	EFETCH        = "fetch"         // network, timeout, or HTTP status failure
	EPARSE        = "parse"         // malformed or unparseable markup
	EEMPTYCONTENT = "empty_content" // page has neither title nor body text
	ENOTFOUND     = "not_found"     // entity does not exist
	EUNAVAILABLE  = "unavailable"   // external service unavailable
	EINTERNAL     = "internal"      // internal error
)

// Error represents an application-specific error. Errors can be
// unwrapped to inspect the code of a wrapped cause.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("deptscrape error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
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
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
