package gemini

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/phrazzld/copyforge-api/internal/config"
	"github.com/phrazzld/copyforge-api/internal/generation"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestNewGeminiGeneratorConfigValidation(t *testing.T) {
	ctx := context.Background()

	_, err := NewGeminiGenerator(ctx, nil, config.LLMConfig{GeminiAPIKey: "k", ModelName: "m"})
	assert.Error(t, err)

	_, err = NewGeminiGenerator(ctx, setupTestLogger(), config.LLMConfig{ModelName: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewGeminiGenerator(ctx, setupTestLogger(), config.LLMConfig{GeminiAPIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestExtractText(t *testing.T) {
	makeResponse := func(parts ...*genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: parts}},
			},
		}
	}

	t.Run("single part", func(t *testing.T) {
		text, err := extractText(makeResponse(&genai.Part{Text: `{"headline":"H"}`}))
		require.NoError(t, err)
		assert.Equal(t, `{"headline":"H"}`, text)
	})

	t.Run("multiple parts concatenated", func(t *testing.T) {
		text, err := extractText(makeResponse(&genai.Part{Text: `{"headline":`}, &genai.Part{Text: `"H"}`}))
		require.NoError(t, err)
		assert.Equal(t, `{"headline":"H"}`, text)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := extractText(nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := extractText(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("nil content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		_, err := extractText(resp)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("empty parts", func(t *testing.T) {
		_, err := extractText(makeResponse())
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("safety block", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{FinishReason: genai.FinishReasonSafety},
			},
		}
		_, err := extractText(resp)
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
	})

	t.Run("no text in parts", func(t *testing.T) {
		_, err := extractText(makeResponse(&genai.Part{}))
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}
