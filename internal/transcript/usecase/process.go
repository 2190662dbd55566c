package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"meeting-tracker/internal/model"
	"meeting-tracker/internal/transcript"
	repo "meeting-tracker/internal/transcript/repository"
	"meeting-tracker/pkg/llmresponse"
)

// Process extracts action items from the text, stores transcript and items
// together and trims history to model.MaxHistory.
func (uc *implUseCase) Process(ctx context.Context, input transcript.ProcessInput) (transcript.ProcessOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return transcript.ProcessOutput{}, transcript.ErrEmptyText
	}
	if utf8.RuneCountInString(input.Text) > transcript.MaxTextLength {
		return transcript.ProcessOutput{}, transcript.ErrTextTooLong
	}

	res, err := uc.extractor.Extract(ctx, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process Extract: %v", err)
		return transcript.ProcessOutput{}, err
	}

	created, err := uc.repo.CreateWithItems(ctx, repo.CreateOptions{
		Text:       input.Text,
		Items:      uc.toItemOptions(ctx, res.Items),
		KeepLatest: model.MaxHistory,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process CreateWithItems: %v", err)
		return transcript.ProcessOutput{}, err
	}

	return transcript.ProcessOutput{Transcript: created, Provider: res.Provider}, nil
}

// toItemOptions converts extracted items for storage. Due dates the model
// produced in an unknown format are dropped rather than failing the batch.
func (uc *implUseCase) toItemOptions(ctx context.Context, items llmresponse.Batch) []repo.ItemOptions {
	out := make([]repo.ItemOptions, 0, len(items))
	for _, it := range items {
		due, err := model.ParseDueDate(it.DueDate)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Process: dropping unparseable due date %q for task %q", *it.DueDate, it.Task)
			due = nil
		}
		out = append(out, repo.ItemOptions{
			Task:    it.Task,
			Owner:   it.Owner,
			DueDate: due,
			Tags:    it.Tags,
		})
	}
	return out
}
