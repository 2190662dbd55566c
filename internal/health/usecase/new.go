package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-tracker/internal/health"
	"meeting-tracker/pkg/log"
	"meeting-tracker/pkg/postgres"
)

const (
	defaultCacheTTL = 60 * time.Second
	llmCacheKey     = "llm"
)

type implUseCase struct {
	prober health.Prober
	db     postgres.DB
	cache  *expirable.LRU[string, health.LLMOutput]
	l      log.Logger
	now    func() time.Time
}

// New creates a health UseCase. LLM probe results are cached for cacheTTL.
func New(prober health.Prober, db postgres.DB, cacheTTL time.Duration, l log.Logger) health.UseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		prober: prober,
		db:     db,
		cache:  expirable.NewLRU[string, health.LLMOutput](1, nil, cacheTTL),
		l:      l,
		now:    time.Now,
	}
}
