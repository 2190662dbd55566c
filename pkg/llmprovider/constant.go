package llmprovider

import "time"

const (
	GroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	GroqModel = "llama-3.3-70b-versatile"

	OpenRouterURL   = "https://openrouter.ai/api/v1/chat/completions"
	OpenRouterModel = "meta-llama/llama-3.3-70b-instruct"

	DefaultAppURL = "http://localhost:3000"

	DefaultTimeout     = 30 * time.Second
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 2048

	healthPrompt    = "Say OK"
	healthMaxTokens = 5

	// maxErrorBody caps how much of a provider error body ends up in error messages.
	maxErrorBody = 500
)

// Health statuses reported by CheckHealth.
const (
	HealthOK    = "ok"
	HealthError = "error"
)
