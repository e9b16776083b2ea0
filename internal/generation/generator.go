package generation

import "context"

// Generator defines the interface for producing text from a prompt pair.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate produces raw response text for the given system instruction
	// and user prompt. The context carries the caller's deadline; an
	// implementation must give up when the context is done rather than
	// block past it.
	//
	// Returns the raw response text, or an error if generation fails
	// (see errors.go for the specific kinds).
	Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}
