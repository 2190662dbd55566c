package transcript

import (
	"time"

	"meeting-tracker/internal/model"
)

// --- UseCase Inputs ---

type ProcessInput struct {
	Text string
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	Transcript model.Transcript
	Provider   string
}

type DetailOutput struct {
	Transcript model.Transcript
}

// Summary is one history entry.
type Summary struct {
	ID        string
	Snippet   string
	CreatedAt time.Time
	ItemCount int
}

type ListRecentOutput struct {
	Summaries []Summary
}
