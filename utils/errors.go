package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error with a client-visible HTTP status. Details carries
// diagnostic payloads (such as an upstream error body) and is only exposed
// in development posture.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func CreateAPIError(code int, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

func CreateAPIErrorWithDetails(code int, message, details string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

var (
	ErrInvalidRequest = CreateAPIError(http.StatusBadRequest, "Invalid request")
	ErrUnauthorized   = CreateAPIError(http.StatusUnauthorized, "Unauthorized")
	ErrNotFound       = CreateAPIError(http.StatusNotFound, "Resource not found")
	ErrInternalServer = CreateAPIError(http.StatusInternalServerError, "Internal server error.")
)

var (
	ErrItemNameRequired = CreateAPIError(http.StatusBadRequest, "item_name is required.")
	ErrInvalidListingID = CreateAPIError(http.StatusBadRequest, "Invalid listing id.")
	ErrSupplyNotFound   = CreateAPIError(http.StatusNotFound, "Supply not found or inactive.")
	ErrDemandNotFound   = CreateAPIError(http.StatusNotFound, "Demand not found or inactive.")
)

var (
	ErrWorkerUnavailable = CreateAPIError(http.StatusBadGateway, "Matching worker failed.")
	ErrDatabaseQuery     = CreateAPIError(http.StatusInternalServerError, "Internal server error.")
)

func WrapError(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// WrapAPIError keeps the APIError in the chain so handlers can still map
// the status while the wrapped cause stays available for logging.
func WrapAPIError(err error, apiErr *APIError) error {
	return fmt.Errorf("%w: %v", apiErr, err)
}

func GetHTTPStatusFromError(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}

func LogError(ctx context.Context, err error, message string, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}

	fields["error"] = err.Error()

	Error(ctx, message, fields)
}
