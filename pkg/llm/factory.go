package llm

import (
	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/config"
)

// NewFactory builds the Factory selected by configuration. The choice between
// stub and hosted provider happens exactly once, here; the model name stays a
// per-call concern because generation requests carry their own llm_model.
func NewFactory(cfg *config.LLMConfig, logger *zap.Logger) Factory {
	if cfg.UseStub {
		return stubFactory{}
	}
	return &providerFactory{cfg: cfg, logger: logger}
}

// stubFactory creates deterministic stub clients.
type stubFactory struct{}

// Create implements Factory.
func (stubFactory) Create(model string) (Client, error) {
	return NewStubClient(model), nil
}

// providerFactory creates hosted-provider clients per requested model.
type providerFactory struct {
	cfg    *config.LLMConfig
	logger *zap.Logger
}

// Create implements Factory.
func (f *providerFactory) Create(model string) (Client, error) {
	if model == "" {
		return nil, NewError(ErrorTypeModel, "model name required", false, nil)
	}

	switch f.cfg.Provider {
	case "anthropic":
		return NewAnthropicClient(&AnthropicConfig{
			Model:     model,
			APIKey:    f.cfg.APIKey,
			MaxTokens: f.cfg.MaxTokens,
		}, f.logger)
	default:
		return NewOpenAIClient(&OpenAIConfig{
			BaseURL:   f.cfg.BaseURL,
			Model:     model,
			APIKey:    f.cfg.APIKey,
			MaxTokens: f.cfg.MaxTokens,
		}, f.logger)
	}
}
