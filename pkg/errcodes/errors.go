package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Details  string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Details = err.Details
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Details == err.Details
}

// ValidationError returns a 400 error for malformed, missing, or out-of-range
// input.
func ValidationError(msg string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  msg,
	}
}

// ValidationErrorWithDetails returns a 400 error carrying a per-field detail
// message alongside the summary.
func ValidationErrorWithDetails(msg, details string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  msg,
		Details:  details,
	}
}

// Unauthorized returns a 401 error. The same message is used for every
// credential failure so callers can't distinguish unknown accounts from wrong
// passwords.
func Unauthorized(msg string) error {
	return &Error{
		HTTPCode: http.StatusUnauthorized,
		Message:  msg,
	}
}

// NotFound returns a 404 error with a message indicating the given resource.
// Ownership violations use this too so existence is never revealed.
func NotFound(resource string) error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Message:  resource + " not found",
	}
}

// Conflict returns a 409 error for uniqueness violations such as duplicate
// emails or ISBNs.
func Conflict(msg string) error {
	return &Error{
		HTTPCode: http.StatusConflict,
		Message:  msg,
	}
}

func UnsupportedMediaType() error {
	return &Error{
		HTTPCode: http.StatusUnsupportedMediaType,
		Message:  "Unsupported media type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf("Unknown parameter %q", param),
	}
}

func MalformedPayload() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Malformed payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Request body can't be empty",
	}
}
