package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/copyforge-api/internal/domain"
	"github.com/phrazzld/copyforge-api/internal/generation"
	"github.com/phrazzld/copyforge-api/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty batch", service.ErrEmptyBatch, http.StatusBadRequest},
		{"batch too large", fmt.Errorf("%w: got 51, max 50", service.ErrBatchTooLarge), http.StatusBadRequest},
		{"invalid offer type", domain.ErrInvalidOfferType, http.StatusBadRequest},
		{"description too long", domain.ErrDescriptionTooLong, http.StatusBadRequest},
		{"timeout", fmt.Errorf("offer 3: %w", generation.ErrTimeout), http.StatusInternalServerError},
		{"malformed output", generation.ErrMalformedOutput, http.StatusInternalServerError},
		{"schema violation", generation.ErrSchemaViolation, http.StatusInternalServerError},
		{"unclassified", errors.New("something odd"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Batch must contain at least one offer", GetSafeErrorMessage(service.ErrEmptyBatch))
	assert.Equal(t, "Invalid offer data", GetSafeErrorMessage(domain.ErrEmptyDescription))
	assert.Equal(t, "Failed to process batch", GetSafeErrorMessage(generation.ErrTimeout))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Processing failures must not leak internals into the message.
	wrapped := fmt.Errorf("offer 2: %w: key=secret", generation.ErrGenerationFailed)
	assert.NotContains(t, GetSafeErrorMessage(wrapped), "secret")
}

func TestSanitizeValidationError(t *testing.T) {
	raw := errors.New(
		"Key: 'BatchCopyRequest.Offers[0].OfferType' Error:Field validation for 'OfferType' failed on the 'oneof' tag",
	)

	message := SanitizeValidationError(raw)
	assert.Contains(t, message, "OfferType")
	assert.NotContains(t, message, "BatchCopyRequest")

	// Non-validator errors get the generic message.
	assert.Equal(t, "Invalid request data", SanitizeValidationError(errors.New("boom")))
}
