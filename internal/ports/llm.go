package ports

import "context"

// ChatInput is a single system+user exchange sent to the text generator.
type ChatInput struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Generator produces free text from a chat-style LLM.
//
// Implementations wrap domain.ErrUpstreamLLM when the provider answers with a
// non-success status and domain.ErrGenerationFailed for every other failure.
type Generator interface {
	Generate(ctx context.Context, in ChatInput) (string, error)
}
