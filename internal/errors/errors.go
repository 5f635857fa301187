// Package errors defines code-tagged application errors and the JSON error
// envelope returned by the HTTP surface.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/observability"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/server/middleware"
)

// Error is an application error carrying a stable machine-readable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// User errors (400-level)

func NewInvalidInputError(message string) *Error {
	return &Error{Code: "INVALID_INPUT", Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Code: "NOT_FOUND", Message: message}
}

func NewMethodNotAllowedError(message string) *Error {
	return &Error{Code: "METHOD_NOT_ALLOWED", Message: message}
}

// Server errors (500-level)

func NewInternalError(message string) *Error {
	return &Error{Code: "INTERNAL_ERROR", Message: message}
}

// Wrap helpers for existing errors

func WrapInvalidInput(err error, message string) *Error {
	return &Error{Code: "INVALID_INPUT", Message: message, Err: err}
}

func WrapNotFound(err error, message string) *Error {
	return &Error{Code: "NOT_FOUND", Message: message, Err: err}
}

func WrapInternal(err error, message string) *Error {
	return &Error{Code: "INTERNAL_ERROR", Message: message, Err: err}
}

// Ensure normalizes any error into an application Error.
func Ensure(err error) *Error {
	if err == nil {
		return NewInternalError("unexpected nil error")
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr
	}
	return WrapInternal(err, "unexpected error")
}

// HTTPStatusFromCode resolves the HTTP status code for an error code.
func HTTPStatusFromCode(code string) int {
	switch code {
	case "INVALID_INPUT", "VALIDATION_FAILED":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "METHOD_NOT_ALLOWED":
		return http.StatusMethodNotAllowed
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorDetail captures the error body returned to callers.
type HTTPErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HTTPErrorResponse wraps HTTPErrorDetail in the standard envelope structure.
type HTTPErrorResponse struct {
	Error HTTPErrorDetail `json:"error"`
}

// RespondWithError normalizes the supplied error and writes a JSON response.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}

	appErr := Ensure(err)
	requestID := requestIDFor(r)
	statusCode := HTTPStatusFromCode(appErr.Code)

	logHTTPError(appErr, statusCode, requestID)

	response := HTTPErrorResponse{
		Error: HTTPErrorDetail{
			Code:      appErr.Code,
			Message:   appErr.Message,
			RequestID: requestID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

func requestIDFor(r *http.Request) string {
	if r != nil {
		if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
			return requestID
		}
	}
	return uuid.New().String()
}

func logHTTPError(appErr *Error, statusCode int, requestID string) {
	if observability.ServerLogger == nil || appErr == nil {
		return
	}

	fields := []zap.Field{
		zap.String("error_code", appErr.Code),
		zap.Int("http_status", statusCode),
		zap.String("request_id", requestID),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}

	if statusCode >= http.StatusInternalServerError {
		observability.ServerLogger.Error(appErr.Message, fields...)
		return
	}
	observability.ServerLogger.Warn(appErr.Message, fields...)
}
