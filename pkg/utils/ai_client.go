package utils

import (
	"context"
	"fmt"
	"strings"
)

// AIClientInterface is the completion surface the planning pipeline depends
// on. Provider failures are wrapped into ErrAIService by the caller; the
// original error never leaves the service layer.
type AIClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// NewAIClient creates either an OpenAI or Gemini client based on config.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
