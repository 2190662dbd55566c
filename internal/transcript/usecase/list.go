package usecase

import (
	"context"

	"meeting-tracker/internal/model"
	"meeting-tracker/internal/transcript"
	repo "meeting-tracker/internal/transcript/repository"
)

// ListRecent returns the newest model.MaxHistory transcripts as summaries.
func (uc *implUseCase) ListRecent(ctx context.Context) (transcript.ListRecentOutput, error) {
	rows, err := uc.repo.ListRecent(ctx, repo.ListRecentOptions{Limit: model.MaxHistory})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecent ListRecent: %v", err)
		return transcript.ListRecentOutput{}, err
	}

	summaries := make([]transcript.Summary, len(rows))
	for i, r := range rows {
		summaries[i] = transcript.Summary{
			ID:        r.ID,
			Snippet:   model.Snippet(r.Text),
			CreatedAt: r.CreatedAt,
			ItemCount: r.ItemCount,
		}
	}
	return transcript.ListRecentOutput{Summaries: summaries}, nil
}
