package health

import (
	"time"

	"meeting-tracker/pkg/llmprovider"
)

type LLMOutput struct {
	Status    llmprovider.HealthStatus
	CheckedAt time.Time
	Cached    bool
}

type DBOutput struct {
	LatencyMs int64
	CheckedAt time.Time
}
