// Package llm provides the LLM port: structured generation against hosted
// providers (OpenAI-compatible or Anthropic) or a deterministic stub.
package llm

import (
	"context"
	"encoding/json"
)

// ResponseSchema names and describes the JSON structure a completion must
// satisfy. Providers that support constrained decoding pass Schema through as
// a response_format; others embed it in the prompt and rely on ExtractJSON.
type ResponseSchema struct {
	Name        string
	Description string
	Schema      json.RawMessage
}

// Client defines the interface for structured LLM generation.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	// GenerateStructured generates a completion whose content is a JSON
	// document satisfying schema. The returned string is the raw model
	// output; callers coerce it with ParseJSONResponse.
	GenerateStructured(ctx context.Context, prompt string, schema ResponseSchema) (string, error)

	// GetModel returns the model name this client requests.
	GetModel() string
}

// Factory creates a Client for a requested model name. The variant (hosted
// provider vs deterministic stub) is chosen once at process start from
// configuration; the model is requested per call.
type Factory interface {
	Create(model string) (Client, error)
}
