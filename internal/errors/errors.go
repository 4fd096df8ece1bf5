package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("user already exists")
	// ErrTooManyImages is returned when a submission carries more than the allowed images.
	ErrTooManyImages = errors.New("too many images")
	// ErrPredictionUnavailable is returned when the price prediction service fails.
	ErrPredictionUnavailable = errors.New("price prediction unavailable")
	// ErrEnhancementUnavailable is returned when the description enhancement service fails.
	ErrEnhancementUnavailable = errors.New("description enhancement unavailable")
)

// ValidationError reports a missing or malformed submission field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Field      string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
		Field: e.Field,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		he := NewHTTPError(http.StatusBadRequest, ve.Error(), "VALIDATION_FAILED")
		he.Field = ve.Field
		return he
	}

	switch {
	case errors.Is(err, ErrListingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LISTING_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrTooManyImages):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOO_MANY_IMAGES")
	case errors.Is(err, ErrPredictionUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "PREDICTION_UNAVAILABLE")
	case errors.Is(err, ErrEnhancementUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "ENHANCEMENT_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
