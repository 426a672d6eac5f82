package llm

import (
	"context"
)

// MockClient is a configurable mock for testing LLM-dependent code.
// Set the function fields to control behavior in tests.
type MockClient struct {
	// GenerateStructuredFunc is called when GenerateStructured is invoked.
	// If nil, returns "{}" and nil error.
	GenerateStructuredFunc func(ctx context.Context, prompt string, schema ResponseSchema) (string, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Call tracking for verification
	GenerateStructuredCalls int
	LastPrompt              string
	LastSchema              string
}

// NewMockClient creates a new mock with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{Model: "mock-model"}
}

// GenerateStructured implements Client.
func (m *MockClient) GenerateStructured(ctx context.Context, prompt string, schema ResponseSchema) (string, error) {
	m.GenerateStructuredCalls++
	m.LastPrompt = prompt
	m.LastSchema = schema.Name
	if m.GenerateStructuredFunc != nil {
		return m.GenerateStructuredFunc(ctx, prompt, schema)
	}
	return "{}", nil
}

// GetModel implements Client.
func (m *MockClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// MockFactory returns the same Client for every requested model.
type MockFactory struct {
	Client Client
	// CreateErr, if set, is returned instead of the client.
	CreateErr error
	// Requested records the model names passed to Create.
	Requested []string
}

// Create implements Factory.
func (f *MockFactory) Create(model string) (Client, error) {
	f.Requested = append(f.Requested, model)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return f.Client, nil
}

// Ensure mocks implement their interfaces at compile time.
var (
	_ Client  = (*MockClient)(nil)
	_ Factory = (*MockFactory)(nil)
)
