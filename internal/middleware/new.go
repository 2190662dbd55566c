package middleware

import (
	"meeting-tracker/config"
	"meeting-tracker/pkg/log"
)

type Middleware struct {
	l              log.Logger
	limiters       map[Category]*rateLimiter
	allowedOrigins map[string]struct{}
}

func New(l log.Logger, rl config.RateLimitConfig, app config.AppConfig) Middleware {
	origins := make(map[string]struct{}, len(app.AllowedOrigins))
	for _, o := range app.AllowedOrigins {
		origins[o] = struct{}{}
	}
	return Middleware{
		l: l,
		limiters: map[Category]*rateLimiter{
			CategoryLLM:    newRateLimiter(rl.LLMPerMin),
			CategoryCRUD:   newRateLimiter(rl.CRUDPerMin),
			CategoryHealth: newRateLimiter(rl.HealthPerMin),
		},
		allowedOrigins: origins,
	}
}
