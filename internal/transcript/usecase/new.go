package usecase

import (
	"meeting-tracker/internal/transcript"
	"meeting-tracker/internal/transcript/repository"
	"meeting-tracker/pkg/log"
)

// implUseCase is the private implementation of transcript.UseCase.
type implUseCase struct {
	repo      repository.Repository
	extractor transcript.Extractor
	l         log.Logger
}

// New creates a new transcript UseCase implementation.
func New(repo repository.Repository, extractor transcript.Extractor, l log.Logger) transcript.UseCase {
	return &implUseCase{
		repo:      repo,
		extractor: extractor,
		l:         l,
	}
}
