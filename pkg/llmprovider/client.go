package llmprovider

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Completer performs single chat-completion calls against one provider.
type Completer interface {
	Complete(ctx context.Context, p ProviderConfig, apiKey, transcript string) (Completion, error)
	Ping(ctx context.Context, p ProviderConfig, apiKey string) error
}

// ClientConfig tunes the request body and transport of Client.
type ClientConfig struct {
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Metrics     *Metrics
}

// Client is the resty-backed Completer.
type Client struct {
	http        *resty.Client
	temperature float64
	maxTokens   int
	metrics     *Metrics
}

// NewClient creates a new Client
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &Client{
		http:        resty.New().SetTimeout(cfg.Timeout),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		metrics:     cfg.Metrics,
	}
}

// Complete sends the extraction request to p and returns the raw completion text.
func (c *Client) Complete(ctx context.Context, p ProviderConfig, apiKey, transcript string) (Completion, error) {
	if apiKey == "" {
		return Completion{}, ErrMissingCredential
	}

	temp := c.temperature
	body := chatRequest{
		Model: p.Model,
		Messages: []chatMessage{
			{Role: "system", Content: ExtractionSystemPrompt},
			{Role: "user", Content: BuildExtractionPrompt(transcript)},
		},
		Temperature:    &temp,
		MaxTokens:      c.maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	start := time.Now()
	raw, err := c.post(ctx, p, apiKey, body)
	latency := time.Since(start)
	if err != nil {
		c.metrics.observe(p.Name, "error", latency, Usage{})
		return Completion{}, err
	}

	content := gjson.GetBytes(raw, "choices.0.message.content")
	if content.Type != gjson.String || content.Str == "" {
		c.metrics.observe(p.Name, "empty", latency, Usage{})
		return Completion{}, ErrEmptyCompletion
	}

	usage := Usage{
		InputTokens:  int(gjson.GetBytes(raw, "usage.prompt_tokens").Int()),
		OutputTokens: int(gjson.GetBytes(raw, "usage.completion_tokens").Int()),
		TotalTokens:  int(gjson.GetBytes(raw, "usage.total_tokens").Int()),
	}
	c.metrics.observe(p.Name, "success", latency, usage)

	return Completion{Text: content.Str, Usage: usage, Latency: latency}, nil
}

// Ping sends a minimal prompt to p. Any 2xx answer counts as reachable.
func (c *Client) Ping(ctx context.Context, p ProviderConfig, apiKey string) error {
	if apiKey == "" {
		return ErrMissingCredential
	}
	body := chatRequest{
		Model:     p.Model,
		Messages:  []chatMessage{{Role: "user", Content: healthPrompt}},
		MaxTokens: healthMaxTokens,
	}
	_, err := c.post(ctx, p, apiKey, body)
	return err
}

func (c *Client) post(ctx context.Context, p ProviderConfig, apiKey string, body chatRequest) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(p.headers(apiKey)).
		SetBody(body).
		Post(p.URL)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.Body(), nil
}
