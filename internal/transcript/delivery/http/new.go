package http

import (
	"meeting-tracker/internal/transcript"
	"meeting-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc transcript.UseCase
}

// New creates a new HTTP handler for the transcript domain.
func New(l log.Logger, uc transcript.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
