package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/copyforge-api/internal/domain"
	"github.com/phrazzld/copyforge-api/internal/generation"
	"github.com/phrazzld/copyforge-api/internal/prompt"
)

// DefaultTimeout is the wall-clock deadline attached to every generation
// call when the executor is configured with a non-positive timeout.
const DefaultTimeout = 5 * time.Second

// Executor runs the external generation call for one offer under a fixed
// deadline. It makes at most one attempt per offer: a call that exceeds
// the deadline is cancelled and reported as a timeout, never retried.
type Executor struct {
	generator generation.Generator
	prompts   *prompt.Builder
	timeout   time.Duration
	logger    *slog.Logger
}

// NewExecutor creates an Executor. A non-positive timeout falls back to
// DefaultTimeout.
func NewExecutor(
	generator generation.Generator,
	prompts *prompt.Builder,
	timeout time.Duration,
	logger *slog.Logger,
) (*Executor, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	if prompts == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if timeout <= 0 {
		logger.Warn("invalid executor timeout, using default",
			"specified_timeout", timeout,
			"default_timeout", DefaultTimeout)
		timeout = DefaultTimeout
	}

	return &Executor{
		generator: generator,
		prompts:   prompts,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Execute builds the prompt pair for the offer and invokes the generation
// service once under the executor's deadline, returning the raw response
// text. A deadline overrun is reported as generation.ErrTimeout.
func (e *Executor) Execute(ctx context.Context, offer domain.Offer) (string, error) {
	systemInstruction, err := e.prompts.BuildSystem(offer.Type)
	if err != nil {
		return "", fmt.Errorf("failed to build system instruction: %w", err)
	}

	userPrompt, err := e.prompts.BuildUser(offer)
	if err != nil {
		return "", fmt.Errorf("failed to build user prompt: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.DebugContext(ctx, "calling generation service",
		"offer_type", offer.Type,
		"description_length", len(offer.Description),
		"timeout", e.timeout)

	text, err := e.generator.Generate(callCtx, systemInstruction, userPrompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s (offer: %q)",
				generation.ErrTimeout, e.timeout, descriptionExcerpt(offer.Description))
		}
		return "", fmt.Errorf("generation call failed: %w", err)
	}

	return text, nil
}

// descriptionExcerpt bounds the offer description for error messages.
func descriptionExcerpt(description string) string {
	const limit = 60
	if len(description) <= limit {
		return description
	}
	return description[:limit] + "..."
}
