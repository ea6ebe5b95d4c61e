package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorType classifies an AppError for logging and HTTP mapping
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInternal     ErrorType = "INTERNAL"
	ErrorTypeRateLimit    ErrorType = "RATE_LIMIT"
	ErrorTypeUnavailable  ErrorType = "UNAVAILABLE"
)

// AppError is the error currency of the service. Every layer that needs
// to signal a client-visible failure returns one, directly or wrapped;
// the HTTP layer maps it through HTTPStatus without guessing.
type AppError struct {
	Type       ErrorType
	Message    string
	Code       string
	Details    map[string]interface{}
	Cause      error
	StackTrace string
	HTTPStatus int
}

// newError builds an AppError with the call site of the exported
// constructor captured in the stack trace.
func newError(errType ErrorType, status int, message string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		HTTPStatus: status,
		StackTrace: callerTrace(4),
	}
}

// NewValidationError reports malformed or unacceptable input
func NewValidationError(message string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message)
}

// NewNotFoundError reports a missing resource by name
func NewNotFoundError(resource string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, resource+" not found")
}

// NewUnauthorizedError reports a failed authentication. An empty message
// falls back to a generic one.
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, message)
}

// NewInternalError reports an unexpected server-side failure
func NewInternalError(message string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message)
}

// NewRateLimitError reports an exhausted request budget
func NewRateLimitError(limit int, window string) *AppError {
	message := fmt.Sprintf("rate limit exceeded: %d requests per %s", limit, window)
	return newError(ErrorTypeRateLimit, http.StatusTooManyRequests, message)
}

// NewUnavailableError reports a dependency that cannot serve requests
func NewUnavailableError(service string) *AppError {
	message := fmt.Sprintf("service '%s' is unavailable", service)
	return newError(ErrorTypeUnavailable, http.StatusServiceUnavailable, message)
}

// Error renders the type and message, appending the cause when present
func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode attaches a machine-readable error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetails attaches structured context, field problems for example
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause records the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// callerTrace formats the stack above the given number of skipped frames
func callerTrace(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			return b.String()
		}
	}
}

// GetAppError finds the first AppError in the chain, nil when there is none
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError reports whether the chain carries an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// IsType reports whether the chain carries an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound reports a NOT_FOUND anywhere in the chain
func IsNotFound(err error) bool { return IsType(err, ErrorTypeNotFound) }

// IsValidation reports a VALIDATION anywhere in the chain
func IsValidation(err error) bool { return IsType(err, ErrorTypeValidation) }

// IsUnauthorized reports an UNAUTHORIZED anywhere in the chain
func IsUnauthorized(err error) bool { return IsType(err, ErrorTypeUnauthorized) }

// IsInternal reports an INTERNAL anywhere in the chain
func IsInternal(err error) bool { return IsType(err, ErrorTypeInternal) }

// Wrap prefixes an error with context. An AppError in the chain keeps
// its type and status and gains the prefix on its message; anything else
// becomes an internal error with the original as cause. Wrapping nil
// stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = message + ": " + appErr.Message
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// Wrapf is Wrap with a format string
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
