package axon

import (
	"errors"
	"fmt"
	"net/http"
)

// HttpError represents an HTTP error with a specific status code and message
type HttpError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NewHttpError creates a new HttpError with the given status code and message
func NewHttpError(statusCode int, message string) *HttpError {
	return &HttpError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewHttpErrorWithDetails creates a new HttpError with additional details
func NewHttpErrorWithDetails(statusCode int, message string, details any) *HttpError {
	return &HttpError{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// ErrBadRequest creates a 400 Bad Request error
func ErrBadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message)
}

// ErrNotFound creates a 404 Not Found error
func ErrNotFound(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message)
}

// ErrInternalServerError creates a 500 Internal Server Error
func ErrInternalServerError(message string) *HttpError {
	return NewHttpError(http.StatusInternalServerError, message)
}

// ErrorStatus returns the status carried by err, or 500 for errors that are not HttpErrors.
func ErrorStatus(err error) (int, string) {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, httpErr.Message
	}
	return http.StatusInternalServerError, err.Error()
}

// ErrorBody is the JSON document adapters write for a failed request.
func ErrorBody(err error) (int, map[string]any) {
	code, msg := ErrorStatus(err)
	body := map[string]any{"error": msg}
	var httpErr *HttpError
	if errors.As(err, &httpErr) && httpErr.Details != nil {
		body["details"] = httpErr.Details
	}
	return code, body
}
