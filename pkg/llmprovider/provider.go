package llmprovider

import "strings"

// HeaderFunc builds the request headers for a provider from its API key.
type HeaderFunc func(apiKey string) map[string]string

// SecretLookup resolves a secret by name. The second return value reports
// whether the secret is set at all.
type SecretLookup func(name string) (string, bool)

// ProviderConfig describes one chat-completion backend. Values are built once
// at start-up and never mutated.
type ProviderConfig struct {
	Name      string
	URL       string
	Model     string
	APIKeyEnv string
	Headers   HeaderFunc
}

// BearerHeaders returns the standard JSON + bearer-token header rule, plus
// any fixed extra headers.
func BearerHeaders(extra map[string]string) HeaderFunc {
	return func(apiKey string) map[string]string {
		h := map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + apiKey,
		}
		for k, v := range extra {
			h[k] = v
		}
		return h
	}
}

func (p ProviderConfig) headers(apiKey string) map[string]string {
	if p.Headers == nil {
		return BearerHeaders(nil)(apiKey)
	}
	return p.Headers(apiKey)
}

// DefaultProviders is the built-in failover chain: Groq first, OpenRouter second.
func DefaultProviders(appURL string) []ProviderConfig {
	if appURL == "" {
		appURL = DefaultAppURL
	}
	return []ProviderConfig{
		{
			Name:      "Groq",
			URL:       GroqURL,
			Model:     GroqModel,
			APIKeyEnv: "GROQ_API_KEY",
			Headers:   BearerHeaders(nil),
		},
		{
			Name:      "OpenRouter",
			URL:       OpenRouterURL,
			Model:     OpenRouterModel,
			APIKeyEnv: "OPENROUTER_API_KEY",
			Headers:   BearerHeaders(map[string]string{"HTTP-Referer": appURL}),
		},
	}
}

// lookupKey returns the provider's API key, treating blank values as unset.
func lookupKey(secrets SecretLookup, p ProviderConfig) (string, bool) {
	if secrets == nil {
		return "", false
	}
	key, ok := secrets(p.APIKeyEnv)
	if !ok || strings.TrimSpace(key) == "" {
		return "", false
	}
	return key, true
}
