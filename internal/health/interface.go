package health

import (
	"context"

	"meeting-tracker/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CheckLLM(ctx context.Context) (LLMOutput, error)
	CheckDB(ctx context.Context) (DBOutput, error)
}

// Prober answers whether any LLM provider is reachable.
// *llmprovider.Manager implements it.
type Prober interface {
	CheckHealth(ctx context.Context) llmprovider.HealthStatus
}
