package analysis

import (
	"fmt"

	"github.com/Veraticus/cc-cleanup/internal/config"
	"github.com/Veraticus/cc-cleanup/internal/hooks"
)

// APIKeyEnv is consulted when no API key is configured.
const APIKeyEnv = "ANTHROPIC_API_KEY"

// New builds the analyzer selected by cfg.Provider. It returns a nil
// analyzer for the "none" provider.
func New(cfg config.AnalysisConfig, runner hooks.CommandRunner, lookupEnv func(string) string) (hooks.Analyzer, error) {
	switch cfg.Provider {
	case config.ProviderCLI, "":
		command := cfg.Command
		if command == "" {
			command = "claude"
		}
		return NewCLIClient(runner, command, cfg.Model, cfg.TimeoutSeconds), nil
	case config.ProviderAPI:
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = lookupEnv(APIKeyEnv)
		}
		if apiKey == "" {
			return nil, fmt.Errorf("api provider requires analysis.api_key or %s", APIKeyEnv)
		}
		return NewAPIClient(cfg.BaseURL, apiKey, cfg.Model, cfg.MaxTokens, cfg.TimeoutSeconds), nil
	case config.ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.Provider)
	}
}
