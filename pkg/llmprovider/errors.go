package llmprovider

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredential indicates the provider's API key is not set
	ErrMissingCredential = errors.New("API key not configured")

	// ErrTransportFailure indicates the request never produced an HTTP response
	ErrTransportFailure = errors.New("transport failure")

	// ErrHTTPStatus indicates the provider answered with a non-2xx status
	ErrHTTPStatus = errors.New("provider returned error status")

	// ErrEmptyCompletion indicates choices[0].message.content was missing or empty
	ErrEmptyCompletion = errors.New("No content in LLM response")

	// ErrAllProvidersFailed indicates every provider in the chain failed
	ErrAllProvidersFailed = errors.New("all LLM providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// TransportError wraps a network-level failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError carries a non-2xx status and the raw response body.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if r := []rune(body); len(r) > maxErrorBody {
		body = string(r[:maxErrorBody]) + "…"
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, body)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AllProvidersFailedError lists every attempt, in the order providers were tried.
type AllProvidersFailedError struct {
	Attempts []*ProviderError
}

func (e *AllProvidersFailedError) Error() string {
	var b strings.Builder
	b.WriteString("All LLM providers failed:")
	for _, a := range e.Attempts {
		b.WriteString("\n  - ")
		b.WriteString(a.Error())
	}
	return b.String()
}

func (e *AllProvidersFailedError) Is(target error) bool {
	return target == ErrAllProvidersFailed
}

func (e *AllProvidersFailedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a)
	}
	return errs
}
