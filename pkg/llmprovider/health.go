package llmprovider

import (
	"context"
	"time"
)

// CheckHealth pings the first provider with a credential, falling through to
// the next one on failure. Only a coarse status is reported.
func (m *Manager) CheckHealth(ctx context.Context) HealthStatus {
	for _, p := range m.providers {
		apiKey, ok := lookupKey(m.secrets, p)
		if !ok {
			continue
		}

		start := time.Now()
		if err := m.client.Ping(ctx, p, apiKey); err != nil {
			m.logger.Warnf(ctx, "llmprovider.Manager.CheckHealth: %s unreachable: %v", p.Name, err)
			continue
		}

		name := p.Name
		return HealthStatus{
			Status:    HealthOK,
			Provider:  &name,
			LatencyMs: time.Since(start).Milliseconds(),
		}
	}

	return HealthStatus{Status: HealthError}
}
