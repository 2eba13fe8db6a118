package watchdog

import (
	"fmt"
)

//------------------------------------------------------------------------------

// ConfigurationError is returned by Create when the passed options are
// malformed. It is never returned by a per-call operation.
type ConfigurationError struct {
	message string
}

// InvalidArgumentError is returned by an operation when a per-call argument
// is malformed. It is raised before any network activity occurs.
type InvalidArgumentError struct {
	message string
}

// RequestError is returned when the server answers with a non-200 status
// code. StatusCode carries the numeric status so callers can branch on it.
type RequestError struct {
	StatusCode int
	message    string
}

//------------------------------------------------------------------------------

func newConfigurationError(format string, a ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		message: fmt.Sprintf(format, a...),
	}
}

func (e *ConfigurationError) Error() string {
	return e.message
}

func newInvalidArgumentError(format string, a ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{
		message: fmt.Sprintf(format, a...),
	}
}

func (e *InvalidArgumentError) Error() string {
	return e.message
}

func newRequestError(text string, statusCode int) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		message:    fmt.Sprintf("%v [Status: %v]", text, statusCode),
	}
}

func (e *RequestError) Error() string {
	return e.message
}
