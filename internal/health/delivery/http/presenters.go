package http

import (
	"time"

	"meeting-tracker/internal/health"
)

type llmResp struct {
	Status    string    `json:"status"`
	Provider  *string   `json:"provider"`
	LatencyMs int64     `json:"latency_ms"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *handler) newLLMResp(out health.LLMOutput) llmResp {
	return llmResp{
		Status:    out.Status.Status,
		Provider:  out.Status.Provider,
		LatencyMs: out.Status.LatencyMs,
		Cached:    out.Cached,
		Timestamp: out.CheckedAt,
	}
}

type dbResp struct {
	Status    string    `json:"status"`
	LatencyMs int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
