package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/copyforge-api/internal/domain"
	"github.com/phrazzld/copyforge-api/internal/generation"
	"github.com/phrazzld/copyforge-api/internal/platform/logger"
	"github.com/phrazzld/copyforge-api/internal/task"
)

// Default batch processing limits
const (
	DefaultConcurrency  = 10
	DefaultMaxBatchSize = 50
)

// OfferExecutor defines the interface for running one offer's generation
// call. Satisfied by *task.Executor; narrowed to an interface so tests can
// substitute a stub.
type OfferExecutor interface {
	// Execute returns the raw generation text for one offer.
	Execute(ctx context.Context, offer domain.Offer) (string, error)
}

// BatchService validates batch shape, dispatches offers through the
// bounded scheduler, and aggregates the ordered results with timing.
//
// The batch as a whole is fail-fast: any single task failure becomes the
// failure of the whole batch, and no partial result list is returned.
type BatchService struct {
	executor     OfferExecutor
	logger       *slog.Logger
	concurrency  int
	maxBatchSize int
}

// NewBatchService creates a BatchService. Non-positive concurrency or
// maxBatchSize fall back to the defaults.
func NewBatchService(
	executor OfferExecutor,
	concurrency int,
	maxBatchSize int,
	logger *slog.Logger,
) (*BatchService, error) {
	if executor == nil {
		return nil, errors.New("executor cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if concurrency <= 0 {
		logger.Warn("invalid batch concurrency, using default",
			"specified", concurrency,
			"default", DefaultConcurrency)
		concurrency = DefaultConcurrency
	}

	if maxBatchSize <= 0 {
		logger.Warn("invalid max batch size, using default",
			"specified", maxBatchSize,
			"default", DefaultMaxBatchSize)
		maxBatchSize = DefaultMaxBatchSize
	}

	return &BatchService{
		executor:     executor,
		logger:       logger,
		concurrency:  concurrency,
		maxBatchSize: maxBatchSize,
	}, nil
}

// ProcessBatch validates the batch shape, runs every offer through the
// executor and decoder with bounded concurrency, and returns the ordered
// results plus the aggregate duration.
//
// Shape failures are returned before any task runs. Any per-task failure
// aborts the batch per the fail-fast policy; results of sibling tasks
// already in flight are discarded.
func (s *BatchService) ProcessBatch(ctx context.Context, offers []domain.Offer) (*domain.BatchResult, error) {
	if len(offers) == 0 {
		return nil, ErrEmptyBatch
	}

	if len(offers) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrBatchTooLarge, len(offers), s.maxBatchSize)
	}

	for i := range offers {
		if err := offers[i].Validate(); err != nil {
			return nil, fmt.Errorf("offer %d: %w", i, err)
		}
	}

	batchID := uuid.New()
	log := logger.FromContextOrDefault(ctx, s.logger).With("batch_id", batchID.String())

	log.InfoContext(ctx, "processing batch",
		"offer_count", len(offers),
		"concurrency", s.concurrency)

	batchStart := time.Now()

	results, err := task.RunBounded(ctx, offers, s.concurrency, s.processOffer)
	if err != nil {
		log.ErrorContext(ctx, "batch failed",
			"offer_count", len(offers),
			"error", err)
		return nil, err
	}

	totalElapsed := time.Since(batchStart)

	log.InfoContext(ctx, "batch completed",
		"offer_count", len(offers),
		"total_ms", totalElapsed.Milliseconds())

	return &domain.BatchResult{
		Results:               results,
		TotalProcessingTimeMs: totalElapsed.Milliseconds(),
	}, nil
}

// processOffer is the per-item task function: one generation call under
// the executor's deadline, then decode and validation, then result
// assembly with the item's own timing.
func (s *BatchService) processOffer(ctx context.Context, offer domain.Offer, index int) (domain.OfferResult, error) {
	taskStart := time.Now()

	raw, err := s.executor.Execute(ctx, offer)
	if err != nil {
		return domain.OfferResult{}, fmt.Errorf("offer %d: %w", index, err)
	}

	adCopy, err := generation.DecodeAdCopy(raw, offer.Description)
	if err != nil {
		return domain.OfferResult{}, fmt.Errorf("offer %d: %w", index, err)
	}

	result, err := domain.NewOfferResult(offer, adCopy, time.Since(taskStart).Milliseconds())
	if err != nil {
		return domain.OfferResult{}, fmt.Errorf("offer %d: %w", index, err)
	}

	return *result, nil
}
