package llmprovider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-provider call outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	tokens   *prometheus.CounterVec
}

// NewMetrics registers the provider collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meeting_tracker",
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "LLM provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meeting_tracker",
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "LLM provider call latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"provider"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meeting_tracker",
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Tokens consumed by direction.",
		}, []string{"provider", "direction"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.latency, m.tokens)
	}
	return m
}

func (m *Metrics) observe(provider, outcome string, d time.Duration, usage Usage) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(provider, outcome).Inc()
	m.latency.WithLabelValues(provider).Observe(d.Seconds())
	if usage.InputTokens > 0 {
		m.tokens.WithLabelValues(provider, "input").Add(float64(usage.InputTokens))
	}
	if usage.OutputTokens > 0 {
		m.tokens.WithLabelValues(provider, "output").Add(float64(usage.OutputTokens))
	}
}
