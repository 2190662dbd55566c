package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"meeting-tracker/internal/actionitem"
	repo "meeting-tracker/internal/actionitem/repository"
	"meeting-tracker/internal/model"
)

// Create stores a manual or transcript-linked action item.
func (uc *implUseCase) Create(ctx context.Context, input actionitem.CreateInput) (actionitem.CreateOutput, error) {
	if strings.TrimSpace(input.Task) == "" {
		return actionitem.CreateOutput{}, actionitem.ErrEmptyTask
	}
	if input.TranscriptID != nil {
		if _, err := uuid.Parse(*input.TranscriptID); err != nil {
			return actionitem.CreateOutput{}, actionitem.ErrTranscriptNotFound
		}
	}
	due, err := model.ParseDueDate(input.DueDate)
	if err != nil {
		return actionitem.CreateOutput{}, actionitem.ErrInvalidDueDate
	}

	item, err := uc.repo.Create(ctx, repo.CreateOptions{
		TranscriptID: input.TranscriptID,
		Task:         input.Task,
		Owner:        input.Owner,
		DueDate:      due,
		Tags:         input.Tags,
	})
	if err != nil {
		if errors.Is(err, repo.ErrTranscriptNotFound) {
			return actionitem.CreateOutput{}, actionitem.ErrTranscriptNotFound
		}
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return actionitem.CreateOutput{}, err
	}
	return actionitem.CreateOutput{Item: item}, nil
}
