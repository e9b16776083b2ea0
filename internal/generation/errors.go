package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when copy generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate copy")

	// ErrTimeout is returned when the external call exceeds the per-task deadline
	ErrTimeout = errors.New("generation timed out")

	// ErrInvalidResponse is returned when the LLM response carries no usable content
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrMalformedOutput is returned when response text is not parseable as JSON
	ErrMalformedOutput = errors.New("malformed generation output")

	// ErrSchemaViolation is returned when parsed output does not match the ad copy shape
	ErrSchemaViolation = errors.New("generation output violates copy schema")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
