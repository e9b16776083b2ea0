package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/copyforge-api/internal/domain"
	"github.com/phrazzld/copyforge-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Batch shape failures map to 400; every failure propagated out of batch
// processing (timeouts, malformed output, schema violations, anything
// unclassified) maps to 500, since by the fail-fast policy they represent
// the whole batch failing, not a caller mistake.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrBatchTooLarge),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidOfferType),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrExistingCopyTooLong):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrEmptyBatch):
		return "Batch must contain at least one offer"

	case errors.Is(err, service.ErrBatchTooLarge):
		return "Batch exceeds the maximum number of offers"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidOfferType),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrExistingCopyTooLong):
		return "Invalid offer data"

	default:
		return "Failed to process batch"
	}
}

// SanitizeValidationError removes sensitive details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'BatchCopyRequest.Offers[0].OfferType'
	// Error:Field validation for 'OfferType' failed on the 'oneof' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Invalid request data"
}

// getValidationTagMessage maps a validator tag to a human-readable reason.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return "value is below the minimum allowed"
	case "max":
		return "value exceeds the maximum allowed"
	case "oneof":
		return "value is not one of the allowed options"
	default:
		return "failed validation"
	}
}
