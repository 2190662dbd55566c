package llmprovider

import (
	"time"

	"meeting-tracker/pkg/llmresponse"
)

// chatRequest is the OpenAI-compatible chat-completion request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// Completion is the raw text a provider returned, with call metadata.
type Completion struct {
	Text    string
	Usage   Usage
	Latency time.Duration
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Result is a successful extraction and the provider that produced it.
type Result struct {
	Items    llmresponse.Batch
	Provider string
	Model    string
	Usage    Usage
}

// HealthStatus is the coarse reachability answer of CheckHealth.
// Provider is nil when no provider answered.
type HealthStatus struct {
	Status    string  `json:"status"`
	Provider  *string `json:"provider"`
	LatencyMs int64   `json:"latencyMs"`
}
