package usecase

import (
	"context"

	"meeting-tracker/internal/health"
	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/postgres"
)

// CheckLLM probes the provider chain, serving a cached answer while it is fresh.
func (uc *implUseCase) CheckLLM(ctx context.Context) (health.LLMOutput, error) {
	if out, ok := uc.cache.Get(llmCacheKey); ok {
		out.Cached = true
		return out, nil
	}

	status := uc.prober.CheckHealth(ctx)
	out := health.LLMOutput{Status: status, CheckedAt: uc.now().UTC()}
	if status.Status != llmprovider.HealthOK {
		uc.l.Warnf(ctx, "uc.CheckLLM: no LLM provider reachable")
	}
	uc.cache.Add(llmCacheKey, out)
	return out, nil
}

// CheckDB runs SELECT 1 against the pool.
func (uc *implUseCase) CheckDB(ctx context.Context) (health.DBOutput, error) {
	latency, err := postgres.Ping(ctx, uc.db)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckDB: %v", err)
		return health.DBOutput{}, health.ErrDatabaseUnavailable
	}
	return health.DBOutput{LatencyMs: latency.Milliseconds(), CheckedAt: uc.now().UTC()}, nil
}
