package usecase

import (
	"context"

	"github.com/google/uuid"

	"meeting-tracker/internal/transcript"
)

// Detail retrieves a transcript with its items. Returns ErrTranscriptNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (transcript.DetailOutput, error) {
	if _, err := uuid.Parse(id); err != nil {
		return transcript.DetailOutput{}, transcript.ErrTranscriptNotFound
	}

	t, err := uc.repo.GetOne(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
		return transcript.DetailOutput{}, err
	}
	if t.ID == "" {
		return transcript.DetailOutput{}, transcript.ErrTranscriptNotFound
	}
	return transcript.DetailOutput{Transcript: t}, nil
}
