package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-tracker/internal/model"
	"meeting-tracker/internal/transcript"
	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/log"
)

type mockUseCase struct {
	processOut transcript.ProcessOutput
	detailOut  transcript.DetailOutput
	listOut    transcript.ListRecentOutput
	err        error
	gotInput   transcript.ProcessInput
}

func (m *mockUseCase) Process(ctx context.Context, input transcript.ProcessInput) (transcript.ProcessOutput, error) {
	m.gotInput = input
	return m.processOut, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (transcript.DetailOutput, error) {
	return m.detailOut, m.err
}

func (m *mockUseCase) ListRecent(ctx context.Context) (transcript.ListRecentOutput, error) {
	return m.listOut, m.err
}

func newTestRouter(uc transcript.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.POST("/api/transcripts", h.Process)
	r.GET("/api/transcripts/:id", h.Detail)
	r.GET("/api/history", h.History)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestProcess(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		tid := "t-1"
		uc := &mockUseCase{processOut: transcript.ProcessOutput{
			Provider: "Groq",
			Transcript: model.Transcript{
				ID:   tid,
				Text: "notes",
				ActionItems: []model.ActionItem{
					{ID: "a-1", TranscriptID: &tid, Task: "Send the deck", DueDate: &due},
				},
			},
		}}
		w, resp := do(t, newTestRouter(uc), http.MethodPost, "/api/transcripts", `{"text":"notes"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "notes", uc.gotInput.Text)

		data := resp["data"].(map[string]any)
		assert.Equal(t, "Groq", data["provider"])
		items := data["transcript"].(map[string]any)["action_items"].([]any)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, "2026-03-01", item["due_date"])
		assert.Nil(t, item["owner"])
		assert.Equal(t, []any{}, item["tags"])
	})

	t.Run("empty text", func(t *testing.T) {
		w, resp := do(t, newTestRouter(&mockUseCase{}), http.MethodPost, "/api/transcripts", `{"text":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, transcript.ErrEmptyText.Error(), resp["message"])
	})

	t.Run("too long", func(t *testing.T) {
		body := `{"text":"` + strings.Repeat("a", transcript.MaxTextLength+1) + `"}`
		w, resp := do(t, newTestRouter(&mockUseCase{}), http.MethodPost, "/api/transcripts", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, transcript.ErrTextTooLong.Error(), resp["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		w, _ := do(t, newTestRouter(&mockUseCase{}), http.MethodPost, "/api/transcripts", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("all providers failed hides diagnostics", func(t *testing.T) {
		uc := &mockUseCase{err: &llmprovider.AllProvidersFailedError{Attempts: []*llmprovider.ProviderError{
			{Provider: "Groq", Err: &llmprovider.HTTPError{StatusCode: 401, Body: "invalid api key sk-123"}},
		}}}
		w, resp := do(t, newTestRouter(uc), http.MethodPost, "/api/transcripts", `{"text":"notes"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.NotContains(t, resp["message"], "sk-123")
	})
}

func TestDetail(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		w, resp := do(t, newTestRouter(&mockUseCase{err: transcript.ErrTranscriptNotFound}), http.MethodGet, "/api/transcripts/x", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Transcript not found", resp["message"])
	})

	t.Run("internal error", func(t *testing.T) {
		w, _ := do(t, newTestRouter(&mockUseCase{err: errors.New("boom")}), http.MethodGet, "/api/transcripts/x", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHistory(t *testing.T) {
	uc := &mockUseCase{listOut: transcript.ListRecentOutput{Summaries: []transcript.Summary{
		{ID: "b", Snippet: "hello…", ItemCount: 2},
	}}}
	w, resp := do(t, newTestRouter(uc), http.MethodGet, "/api/history", "")

	require.Equal(t, http.StatusOK, w.Code)
	list := resp["data"].(map[string]any)["transcripts"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "hello…", list[0].(map[string]any)["snippet"])
	assert.Equal(t, float64(2), list[0].(map[string]any)["item_count"])
}
