package domain

import "errors"

// Mode records whether a task produced brand-new copy or revised
// copy the caller supplied.
type Mode string

// Possible mode values
const (
	ModeGenerated Mode = "generated"
	ModeModified  Mode = "modified"
)

// Common validation errors for results
var (
	ErrNilCopy            = errors.New("result copy cannot be nil")
	ErrNegativeProcessing = errors.New("processing time cannot be negative")
)

// ModeForOffer derives the result mode from the presence of existing copy
// on the originating offer.
func ModeForOffer(offer Offer) Mode {
	if offer.HasExistingCopy() {
		return ModeModified
	}
	return ModeGenerated
}

// OfferResult is the outcome of one successfully completed task. It echoes
// the identifying fields of the originating offer and is never mutated
// after creation.
type OfferResult struct {
	OfferType        OfferType `json:"offerType"`
	OfferDescription string    `json:"offerDescription"`
	Mode             Mode      `json:"mode"`
	Copy             AdCopy    `json:"copy"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
}

// NewOfferResult creates a validated OfferResult for the given offer.
func NewOfferResult(offer Offer, copy *AdCopy, processingTimeMs int64) (*OfferResult, error) {
	if copy == nil {
		return nil, ErrNilCopy
	}

	if processingTimeMs < 0 {
		return nil, ErrNegativeProcessing
	}

	return &OfferResult{
		OfferType:        offer.Type,
		OfferDescription: offer.Description,
		Mode:             ModeForOffer(offer),
		Copy:             *copy,
		ProcessingTimeMs: processingTimeMs,
	}, nil
}

// BatchResult aggregates the ordered task results of one batch call plus
// the wall-clock duration of the whole batch. Results are in the same
// order and of the same count as the originating batch request.
type BatchResult struct {
	Results               []OfferResult `json:"results"`
	TotalProcessingTimeMs int64         `json:"totalProcessingTimeMs"`
}
