package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return NewClient(ClientConfig{Timeout: 2 * time.Second, Temperature: DefaultTemperature, MaxTokens: DefaultMaxTokens})
}

func TestClientComplete(t *testing.T) {
	var got map[string]any
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}],"usage":{"prompt_tokens":12,"completion_tokens":3,"total_tokens":15}}`))
	}))
	defer srv.Close()

	p := ProviderConfig{
		Name:    "OpenRouter",
		URL:     srv.URL,
		Model:   "m",
		Headers: BearerHeaders(map[string]string{"HTTP-Referer": "http://localhost:3000"}),
	}

	comp, err := newTestClient().Complete(context.Background(), p, "secret", "We agreed Ana sends the deck.")
	require.NoError(t, err)

	assert.Equal(t, "[]", comp.Text)
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 3, TotalTokens: 15}, comp.Usage)

	assert.Equal(t, "Bearer secret", gotHeaders.Get("Authorization"))
	assert.Equal(t, "http://localhost:3000", gotHeaders.Get("HTTP-Referer"))

	assert.Equal(t, "m", got["model"])
	assert.Equal(t, 0.1, got["temperature"])
	assert.Equal(t, float64(2048), got["max_tokens"])
	assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])

	msgs, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "Extract action items from this meeting transcript:\n\nWe agreed Ana sends the deck.", msgs[1].(map[string]any)["content"])
}

func TestClientComplete_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "http error", status: http.StatusUnauthorized, body: `{"error":"bad key"}`, wantErr: ErrHTTPStatus},
		{name: "server error", status: http.StatusBadGateway, body: `upstream`, wantErr: ErrHTTPStatus},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: ErrEmptyCompletion},
		{name: "empty content", status: http.StatusOK, body: `{"choices":[{"message":{"content":""}}]}`, wantErr: ErrEmptyCompletion},
		{name: "null content", status: http.StatusOK, body: `{"choices":[{"message":{"content":null}}]}`, wantErr: ErrEmptyCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient().Complete(context.Background(), ProviderConfig{Name: "x", URL: srv.URL}, "k", "t")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				assert.Equal(t, tt.status, httpErr.StatusCode)
				assert.Equal(t, tt.body, httpErr.Body)
			}
		})
	}
}

func TestClientComplete_MissingCredential(t *testing.T) {
	_, err := newTestClient().Complete(context.Background(), ProviderConfig{Name: "x", URL: "http://127.0.0.1:1"}, "", "t")
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestClientComplete_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient().Complete(context.Background(), ProviderConfig{Name: "x", URL: url}, "k", "t")
	assert.ErrorIs(t, err, ErrTransportFailure)
}

func TestClientPing(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"OK"}}]}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestClient().Ping(context.Background(), ProviderConfig{Name: "x", URL: srv.URL, Model: "m"}, "k"))
	assert.Equal(t, float64(5), got["max_tokens"])
	assert.NotContains(t, got, "response_format")
}

func TestHTTPErrorTruncatesMessage(t *testing.T) {
	body := make([]byte, 800)
	for i := range body {
		body[i] = 'a'
	}
	err := &HTTPError{StatusCode: 500, Body: string(body)}

	assert.Len(t, err.Body, 800)
	assert.Contains(t, err.Error(), "HTTP 500: ")
	assert.Less(t, len(err.Error()), 800)
}
