package http

import (
	"meeting-tracker/internal/health"
	"meeting-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc health.UseCase
}

// New creates a new HTTP handler for the dependency health endpoints.
func New(l log.Logger, uc health.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
