package errors

import (
	"errors"
	"fmt"
)

// AppError is the single error type surfaced by the SDK. Code tags the
// failure class; Message is the best-effort human-readable text extracted
// from the server's error envelope or synthesized locally.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Network covers failures before any HTTP status was received: DNS,
// connection refused, broken pipe.
func Network(err error) *AppError {
	return &AppError{
		Code:    "NETWORK_ERROR",
		Message: "request failed",
		Err:     err,
	}
}

// HTTPStatus covers non-success responses. Status carries the numeric
// code; message is taken from the response envelope when one parsed.
func HTTPStatus(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &AppError{
		Code:    "HTTP_ERROR",
		Message: message,
		Status:  status,
	}
}

// Parse covers success responses whose body could not be decoded.
func Parse(err error) *AppError {
	return &AppError{
		Code:    "PARSE_ERROR",
		Message: "failed to decode response",
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// StatusOf returns the HTTP status attached to err, or 0 when err carries
// none (network and parse failures, non-AppError values).
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}
