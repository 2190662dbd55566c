package llmprovider

import (
	"fmt"
	"sort"

	"meeting-tracker/config"
	"meeting-tracker/pkg/log"
)

// BuildProviders turns config.LLMConfig into the ordered failover chain.
// With no providers configured it returns the built-in Groq/OpenRouter chain.
// Otherwise disabled providers are filtered out and the rest sorted by priority.
func BuildProviders(cfg *config.LLMConfig, appURL string) ([]ProviderConfig, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return DefaultProviders(appURL), nil
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}

	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	providers := make([]ProviderConfig, 0, len(enabled))
	for _, p := range enabled {
		providers = append(providers, createProvider(p))
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) ProviderConfig {
	extra := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		extra[k] = v
	}
	return ProviderConfig{
		Name:      cfg.Name,
		URL:       cfg.URL,
		Model:     cfg.Model,
		APIKeyEnv: cfg.APIKeyEnv,
		Headers:   BearerHeaders(extra),
	}
}

// NewFromConfig builds the provider chain, the HTTP client and the Manager
// from the loaded service configuration. Secrets are read from the process
// environment at call time.
func NewFromConfig(cfg *config.Config, metrics *Metrics, logger log.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	providers, err := BuildProviders(&cfg.LLM, cfg.App.URL)
	if err != nil {
		return nil, err
	}
	client := NewClient(ClientConfig{
		Timeout:     cfg.LLM.RequestTimeout,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Metrics:     metrics,
	})
	return NewManager(providers, client, config.LookupEnv, logger), nil
}
