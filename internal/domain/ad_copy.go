package domain

import "errors"

// Field length bounds for AdCopy
const (
	MaxHeadlineLength     = 120
	MaxCallToActionLength = 80
)

// Common validation errors for AdCopy
var (
	ErrEmptyHeadline      = errors.New("headline cannot be empty")
	ErrHeadlineTooLong    = errors.New("headline exceeds maximum length")
	ErrEmptyBody          = errors.New("body cannot be empty")
	ErrEmptyCallToAction  = errors.New("call to action cannot be empty")
	ErrCallToActionTooLong = errors.New("call to action exceeds maximum length")
)

// AdCopy is the validated structured output of one generation task.
// Subheadline and LegalDisclaimer are genuinely optional: a nil pointer
// means the model explicitly returned null for the field.
type AdCopy struct {
	Headline        string  `json:"headline"`
	Subheadline     *string `json:"subheadline"`
	Body            string  `json:"body"`
	CallToAction    string  `json:"callToAction"`
	LegalDisclaimer *string `json:"legalDisclaimer"`
}

// Validate checks the copy's required fields and length bounds.
func (c *AdCopy) Validate() error {
	if c.Headline == "" {
		return ErrEmptyHeadline
	}

	if len(c.Headline) > MaxHeadlineLength {
		return ErrHeadlineTooLong
	}

	if c.Body == "" {
		return ErrEmptyBody
	}

	if c.CallToAction == "" {
		return ErrEmptyCallToAction
	}

	if len(c.CallToAction) > MaxCallToActionLength {
		return ErrCallToActionTooLong
	}

	return nil
}
