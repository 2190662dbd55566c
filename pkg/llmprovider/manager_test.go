package llmprovider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meeting-tracker/pkg/llmresponse"
)

// mockCompleter is a test implementation of the Completer interface
type mockCompleter struct {
	results   map[string]string
	errs      map[string]error
	calls     []string
	pingCalls []string
}

func (m *mockCompleter) Complete(ctx context.Context, p ProviderConfig, apiKey, transcript string) (Completion, error) {
	m.calls = append(m.calls, p.Name)
	if err, ok := m.errs[p.Name]; ok {
		return Completion{}, err
	}
	return Completion{Text: m.results[p.Name], Usage: Usage{InputTokens: 10, OutputTokens: 5}}, nil
}

func (m *mockCompleter) Ping(ctx context.Context, p ProviderConfig, apiKey string) error {
	m.pingCalls = append(m.pingCalls, p.Name)
	return m.errs[p.Name]
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func testProviders() []ProviderConfig {
	return []ProviderConfig{
		{Name: "Groq", Model: "groq-model", APIKeyEnv: "GROQ_API_KEY"},
		{Name: "OpenRouter", Model: "openrouter-model", APIKeyEnv: "OPENROUTER_API_KEY"},
	}
}

func secretsFrom(values map[string]string) SecretLookup {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

const validBatch = `[{"task":"Send the deck","owner":"Ana","dueDate":"2026-03-01","tags":["follow-up"]}]`

func TestExtract_SuccessWithPrimaryProvider(t *testing.T) {
	client := &mockCompleter{results: map[string]string{"Groq": validBatch}}
	logger := &mockLogger{}
	secrets := secretsFrom(map[string]string{"GROQ_API_KEY": "g", "OPENROUTER_API_KEY": "o"})

	manager := NewManager(testProviders(), client, secrets, logger)

	res, err := manager.Extract(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if res.Provider != "Groq" {
		t.Errorf("Expected provider 'Groq', got: %s", res.Provider)
	}
	if len(res.Items) != 1 || res.Items[0].Task != "Send the deck" {
		t.Errorf("Unexpected items: %+v", res.Items)
	}
	if len(client.calls) != 1 {
		t.Errorf("Expected 1 provider call, got: %d", len(client.calls))
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestExtract_SkipsProviderWithoutCredential(t *testing.T) {
	client := &mockCompleter{results: map[string]string{"OpenRouter": validBatch}}
	logger := &mockLogger{}
	secrets := secretsFrom(map[string]string{"OPENROUTER_API_KEY": "o"})

	manager := NewManager(testProviders(), client, secrets, logger)

	res, err := manager.Extract(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if res.Provider != "OpenRouter" {
		t.Errorf("Expected provider 'OpenRouter', got: %s", res.Provider)
	}
	if res.Model != "openrouter-model" {
		t.Errorf("Expected model 'openrouter-model', got: %s", res.Model)
	}
	if len(client.calls) != 1 || client.calls[0] != "OpenRouter" {
		t.Errorf("Expected only OpenRouter to be called, got: %v", client.calls)
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Missing credential should not log a failure, got: %v", logger.warnMessages)
	}
}

func TestExtract_BlankCredentialTreatedAsMissing(t *testing.T) {
	client := &mockCompleter{results: map[string]string{"OpenRouter": validBatch}}
	secrets := secretsFrom(map[string]string{"GROQ_API_KEY": "   ", "OPENROUTER_API_KEY": "o"})

	manager := NewManager(testProviders(), client, secrets, &mockLogger{})

	res, err := manager.Extract(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if res.Provider != "OpenRouter" {
		t.Errorf("Expected provider 'OpenRouter', got: %s", res.Provider)
	}
}

func TestExtract_FallbackOnInvalidResponse(t *testing.T) {
	client := &mockCompleter{results: map[string]string{
		"Groq":       "Sure! Here are your items.",
		"OpenRouter": "```json\n" + validBatch + "\n```",
	}}
	logger := &mockLogger{}
	secrets := secretsFrom(map[string]string{"GROQ_API_KEY": "g", "OPENROUTER_API_KEY": "o"})

	manager := NewManager(testProviders(), client, secrets, logger)

	res, err := manager.Extract(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if res.Provider != "OpenRouter" {
		t.Errorf("Expected provider 'OpenRouter', got: %s", res.Provider)
	}
	if len(client.calls) != 2 {
		t.Errorf("Expected 2 provider calls, got: %d", len(client.calls))
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestExtract_AllProvidersFail(t *testing.T) {
	client := &mockCompleter{errs: map[string]error{
		"Groq":       &HTTPError{StatusCode: 500, Body: "boom"},
		"OpenRouter": &HTTPError{StatusCode: 429, Body: "slow down"},
	}}
	logger := &mockLogger{}
	secrets := secretsFrom(map[string]string{"GROQ_API_KEY": "g", "OPENROUTER_API_KEY": "o"})

	manager := NewManager(testProviders(), client, secrets, logger)

	_, err := manager.Extract(context.Background(), "transcript")
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}

	var all *AllProvidersFailedError
	if !errors.As(err, &all) {
		t.Fatalf("Expected *AllProvidersFailedError, got: %T", err)
	}
	if len(all.Attempts) != 2 {
		t.Fatalf("Expected 2 attempts, got: %d", len(all.Attempts))
	}
	if all.Attempts[0].Provider != "Groq" || all.Attempts[1].Provider != "OpenRouter" {
		t.Errorf("Attempts out of order: %s, %s", all.Attempts[0].Provider, all.Attempts[1].Provider)
	}
	if !errors.Is(err, ErrHTTPStatus) {
		t.Errorf("Expected aggregated error to wrap ErrHTTPStatus")
	}

	want := "All LLM providers failed:\n  - Groq: HTTP 500: boom\n  - OpenRouter: HTTP 429: slow down"
	if err.Error() != want {
		t.Errorf("Unexpected message:\n%s", err.Error())
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestExtract_NoCredentialsAtAll(t *testing.T) {
	client := &mockCompleter{}
	manager := NewManager(testProviders(), client, secretsFrom(nil), &mockLogger{})

	_, err := manager.Extract(context.Background(), "transcript")

	var all *AllProvidersFailedError
	if !errors.As(err, &all) {
		t.Fatalf("Expected *AllProvidersFailedError, got: %v", err)
	}
	for _, a := range all.Attempts {
		if !errors.Is(a, ErrMissingCredential) {
			t.Errorf("Expected missing credential for %s, got: %v", a.Provider, a.Err)
		}
	}
	if len(client.calls) != 0 {
		t.Errorf("Expected no provider calls, got: %v", client.calls)
	}
	if !strings.Contains(err.Error(), "Groq: API key not configured") {
		t.Errorf("Expected skip reason in message, got: %s", err.Error())
	}
}

func TestExtract_ValidationFailureRecorded(t *testing.T) {
	client := &mockCompleter{results: map[string]string{"Groq": `[]`}}
	manager := NewManager(testProviders()[:1], client, secretsFrom(map[string]string{"GROQ_API_KEY": "g"}), &mockLogger{})

	_, err := manager.Extract(context.Background(), "transcript")
	if !errors.Is(err, llmresponse.ErrValidationFailed) {
		t.Errorf("Expected validation failure in chain, got: %v", err)
	}
}

func TestExtract_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &mockCompleter{}, secretsFrom(nil), &mockLogger{})

	_, err := manager.Extract(context.Background(), "transcript")
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestCheckHealth(t *testing.T) {
	t.Run("first provider with credential answers", func(t *testing.T) {
		client := &mockCompleter{}
		manager := NewManager(testProviders(), client, secretsFrom(map[string]string{"OPENROUTER_API_KEY": "o"}), &mockLogger{})

		status := manager.CheckHealth(context.Background())
		if status.Status != HealthOK {
			t.Fatalf("Expected ok, got: %s", status.Status)
		}
		if status.Provider == nil || *status.Provider != "OpenRouter" {
			t.Errorf("Expected OpenRouter, got: %v", status.Provider)
		}
		if len(client.pingCalls) != 1 {
			t.Errorf("Expected 1 ping, got: %d", len(client.pingCalls))
		}
	})

	t.Run("falls through on failure", func(t *testing.T) {
		client := &mockCompleter{errs: map[string]error{"Groq": &TransportError{Err: errors.New("dial tcp")}}}
		secrets := secretsFrom(map[string]string{"GROQ_API_KEY": "g", "OPENROUTER_API_KEY": "o"})
		manager := NewManager(testProviders(), client, secrets, &mockLogger{})

		status := manager.CheckHealth(context.Background())
		if status.Status != HealthOK || *status.Provider != "OpenRouter" {
			t.Errorf("Expected OpenRouter ok, got: %+v", status)
		}
	})

	t.Run("no credentials", func(t *testing.T) {
		client := &mockCompleter{}
		manager := NewManager(testProviders(), client, secretsFrom(nil), &mockLogger{})

		status := manager.CheckHealth(context.Background())
		if status.Status != HealthError || status.Provider != nil || status.LatencyMs != 0 {
			t.Errorf("Expected error status, got: %+v", status)
		}
		if len(client.pingCalls) != 0 {
			t.Errorf("Expected no pings, got: %d", len(client.pingCalls))
		}
	})

	t.Run("all fail", func(t *testing.T) {
		client := &mockCompleter{errs: map[string]error{
			"Groq":       &HTTPError{StatusCode: 401},
			"OpenRouter": &HTTPError{StatusCode: 503},
		}}
		secrets := secretsFrom(map[string]string{"GROQ_API_KEY": "g", "OPENROUTER_API_KEY": "o"})
		manager := NewManager(testProviders(), client, secrets, &mockLogger{})

		status := manager.CheckHealth(context.Background())
		if status.Status != HealthError || status.Provider != nil {
			t.Errorf("Expected error status, got: %+v", status)
		}
	})
}
