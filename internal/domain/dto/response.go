package dto

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates a malformed or out-of-range request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates a missing or invalid API key.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates an unknown route.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates the client exceeded the rate limit.
	ErrCodeRateLimit = "rate_limit_exceeded"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the error envelope shared by every API endpoint.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"Input is outside the supported range"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates an ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID sets the request ID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails sets the details map.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus maps an HTTP status to an error code.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	default:
		return ErrCodeInternal
	}
}

// DomainErrorDetails describes an out-of-range input for the error response, or
// returns nil when err is not a *model.DomainError.
func DomainErrorDetails(err error) map[string]string {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		return nil
	}
	return map[string]string{
		"field": domainErr.Field,
		"value": strconv.FormatFloat(domainErr.Value, 'g', -1, 64),
		"min":   strconv.FormatFloat(domainErr.Min, 'g', -1, 64),
		"max":   strconv.FormatFloat(domainErr.Max, 'g', -1, 64),
	}
}
