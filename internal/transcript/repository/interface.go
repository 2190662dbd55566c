package repository

import (
	"context"

	"meeting-tracker/internal/model"
)

// Repository defines all data access methods for transcripts.
type Repository interface {
	// CreateWithItems stores the transcript and its items atomically, then
	// prunes everything older than the newest KeepLatest transcripts.
	CreateWithItems(ctx context.Context, opt CreateOptions) (model.Transcript, error)
	// GetOne returns a zero-value Transcript (ID == "") when not found.
	GetOne(ctx context.Context, id string) (model.Transcript, error)
	ListRecent(ctx context.Context, opt ListRecentOptions) ([]model.TranscriptSummary, error)
}
