// Package service provides the application-level orchestration for batch
// copy generation.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrEmptyBatch indicates a batch request with no offers.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyBatch = errors.New("batch must contain at least one offer")

	// ErrBatchTooLarge indicates a batch request above the size bound.
	// API layer should map this to HTTP 400 Bad Request.
	ErrBatchTooLarge = errors.New("batch exceeds the maximum number of offers")
)
