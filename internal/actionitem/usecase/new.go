package usecase

import (
	"meeting-tracker/internal/actionitem"
	"meeting-tracker/internal/actionitem/repository"
	"meeting-tracker/pkg/log"
)

// implUseCase is the private implementation of actionitem.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new actionitem UseCase implementation.
func New(repo repository.Repository, l log.Logger) actionitem.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
