package http

import (
	"meeting-tracker/internal/actionitem"
	"meeting-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc actionitem.UseCase
}

// New creates a new HTTP handler for the action item domain.
func New(l log.Logger, uc actionitem.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
