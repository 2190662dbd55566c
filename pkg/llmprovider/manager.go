package llmprovider

import (
	"context"
	"errors"

	"meeting-tracker/pkg/llmresponse"
	"meeting-tracker/pkg/log"
)

// Manager walks the provider chain in order until one returns a valid batch.
type Manager struct {
	providers []ProviderConfig
	client    Completer
	secrets   SecretLookup
	logger    log.Logger
}

// NewManager creates a new Provider Manager with the given providers, client, secret source and logger
func NewManager(providers []ProviderConfig, client Completer, secrets SecretLookup, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		client:    client,
		secrets:   secrets,
		logger:    logger,
	}
}

// Providers returns the configured chain in attempt order.
func (m *Manager) Providers() []ProviderConfig {
	return m.providers
}

// Extract tries providers one at a time. A provider without a credential is
// skipped; any client, normalizer or validator failure moves on to the next
// provider. When every provider fails the error is *AllProvidersFailedError.
func (m *Manager) Extract(ctx context.Context, transcript string) (Result, error) {
	if len(m.providers) == 0 {
		return Result{}, ErrNoProvidersConfigured
	}

	var attempts []*ProviderError

	for _, p := range m.providers {
		apiKey, ok := lookupKey(m.secrets, p)
		if !ok {
			m.logger.Debugf(ctx, "llmprovider.Manager.Extract: skipping %s, %s not set", p.Name, p.APIKeyEnv)
			attempts = append(attempts, &ProviderError{Provider: p.Name, Err: ErrMissingCredential})
			continue
		}

		items, comp, err := m.try(ctx, p, apiKey, transcript)
		if err != nil {
			m.logFailure(ctx, p, err)
			attempts = append(attempts, &ProviderError{Provider: p.Name, Err: err})
			continue
		}

		m.logSuccess(ctx, p, comp, len(items))
		return Result{
			Items:    items,
			Provider: p.Name,
			Model:    p.Model,
			Usage:    comp.Usage,
		}, nil
	}

	return Result{}, &AllProvidersFailedError{Attempts: attempts}
}

func (m *Manager) try(ctx context.Context, p ProviderConfig, apiKey, transcript string) (llmresponse.Batch, Completion, error) {
	comp, err := m.client.Complete(ctx, p, apiKey, transcript)
	if err != nil {
		return nil, Completion{}, err
	}
	items, err := llmresponse.Parse(comp.Text)
	if err != nil {
		return nil, comp, err
	}
	return items, comp, nil
}

// logSuccess logs successful extraction with metrics
func (m *Manager) logSuccess(ctx context.Context, p ProviderConfig, comp Completion, count int) {
	m.logger.Info(ctx, "LLM extraction successful",
		"provider", p.Name,
		"model", p.Model,
		"items", count,
		"latency_ms", comp.Latency.Milliseconds(),
		"input_tokens", comp.Usage.InputTokens,
		"output_tokens", comp.Usage.OutputTokens,
	)
}

// logFailure logs failed extraction attempts
func (m *Manager) logFailure(ctx context.Context, p ProviderConfig, err error) {
	stage := "provider"
	if errors.Is(err, llmresponse.ErrInvalidJSON) || errors.Is(err, llmresponse.ErrValidationFailed) {
		stage = "response"
	}
	m.logger.Warn(ctx, "LLM extraction failed",
		"provider", p.Name,
		"model", p.Model,
		"stage", stage,
		"error", err.Error(),
	)
}
