package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/copyforge-api/internal/api/shared"
	"github.com/phrazzld/copyforge-api/internal/domain"
)

// BatchProcessor defines the service interface the handler depends on.
type BatchProcessor interface {
	// ProcessBatch runs the ordered offers and returns the ordered results.
	ProcessBatch(ctx context.Context, offers []domain.Offer) (*domain.BatchResult, error)
}

// BatchHandler handles batch copy generation HTTP requests.
type BatchHandler struct {
	batchService BatchProcessor
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService BatchProcessor, logger *slog.Logger) *BatchHandler {
	return &BatchHandler{
		batchService: batchService,
		validator:    validator.New(),
		logger:       logger,
	}
}

// GenerateBatch handles POST /api/copy/batch requests.
//
// Shape validation (offer count bounds, per-offer field bounds) happens
// here, before the service or any external call is reached. Processing
// failures surface as a single batch-level error per the fail-fast policy.
func (h *BatchHandler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchCopyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	offers := make([]domain.Offer, len(req.Offers))
	for i, payload := range req.Offers {
		offers[i] = domain.Offer{
			Type:         domain.OfferType(payload.OfferType),
			Description:  payload.OfferDescription,
			ExistingCopy: payload.ExistingCopy,
		}
	}

	batch, err := h.batchService.ProcessBatch(r.Context(), offers)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "batch processing failed",
			"offer_count", len(offers),
			"error", err)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, batchToDTOResponse(batch))
}

// batchToDTOResponse converts a domain.BatchResult to a BatchCopyResponse.
func batchToDTOResponse(batch *domain.BatchResult) BatchCopyResponse {
	results := make([]OfferResultPayload, len(batch.Results))
	for i, result := range batch.Results {
		results[i] = OfferResultPayload{
			OfferType:        string(result.OfferType),
			OfferDescription: result.OfferDescription,
			Mode:             string(result.Mode),
			Copy: AdCopyPayload{
				Headline:        result.Copy.Headline,
				Subheadline:     result.Copy.Subheadline,
				Body:            result.Copy.Body,
				CallToAction:    result.Copy.CallToAction,
				LegalDisclaimer: result.Copy.LegalDisclaimer,
			},
			ProcessingTimeMs: result.ProcessingTimeMs,
		}
	}

	return BatchCopyResponse{
		Results:               results,
		TotalProcessingTimeMs: batch.TotalProcessingTimeMs,
	}
}
