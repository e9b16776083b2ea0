package api

// Common request/response structures

// OfferPayload is one copy-generation request inside a batch.
type OfferPayload struct {
	OfferType        string  `json:"offerType"        validate:"required,oneof=discount bogo free_shipping new_product seasonal loyalty"`
	OfferDescription string  `json:"offerDescription" validate:"required,min=1,max=2000"`
	ExistingCopy     *string `json:"existingCopy,omitempty" validate:"omitempty,max=5000"`
}

// BatchCopyRequest defines the payload for the batch copy generation endpoint.
type BatchCopyRequest struct {
	Offers []OfferPayload `json:"offers" validate:"required,min=1,max=50,dive"`
}

// AdCopyPayload is the structured copy for one offer. Subheadline and
// LegalDisclaimer serialize as explicit null when absent.
type AdCopyPayload struct {
	Headline        string  `json:"headline"`
	Subheadline     *string `json:"subheadline"`
	Body            string  `json:"body"`
	CallToAction    string  `json:"callToAction"`
	LegalDisclaimer *string `json:"legalDisclaimer"`
}

// OfferResultPayload is the outcome for one offer in a batch response.
type OfferResultPayload struct {
	OfferType        string        `json:"offerType"`
	OfferDescription string        `json:"offerDescription"`
	Mode             string        `json:"mode"`
	Copy             AdCopyPayload `json:"copy"`
	ProcessingTimeMs int64         `json:"processingTimeMs"`
}

// BatchCopyResponse defines the successful response for the batch copy
// generation endpoint. Results are in request order.
type BatchCopyResponse struct {
	Results               []OfferResultPayload `json:"results"`
	TotalProcessingTimeMs int64                `json:"totalProcessingTimeMs"`
}
