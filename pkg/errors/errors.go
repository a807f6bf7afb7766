package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
	CodeUpstream     = "UPSTREAM_ERROR"
	CodeUpstreamAuth = "UPSTREAM_AUTH_ERROR"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	// RawBody holds an upstream error payload that must reach the caller verbatim.
	RawBody json.RawMessage `json:"-"`
	Err     error           `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// Validation is answered with 400 before any provider call is made.
func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Upstream mirrors a provider failure: same status, same body.
// A body that is not JSON degrades to message as a regular {"error": ...} payload.
func Upstream(status int, body []byte, message string, err error) *AppError {
	appErr := &AppError{
		Code:       CodeUpstream,
		Message:    message,
		HTTPStatus: status,
		Err:        err,
	}
	if len(body) > 0 && json.Valid(body) {
		appErr.RawBody = json.RawMessage(body)
	}
	return appErr
}

// UpstreamAuth reports a failed credential exchange. Callers never see the
// provider's token response, only message.
func UpstreamAuth(message string, err error) *AppError {
	return &AppError{
		Code:       CodeUpstreamAuth,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// AsAppError unwraps err to an AppError, turning anything else into a 500.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
