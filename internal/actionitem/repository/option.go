package repository

import "time"

// CreateOptions holds parameters for inserting an action item.
type CreateOptions struct {
	TranscriptID *string
	Task         string
	Owner        *string
	DueDate      *time.Time
	Tags         []string
}

// UpdateOptions carries the full new state of an action item.
type UpdateOptions struct {
	ID      string
	Task    string
	Owner   *string
	DueDate *time.Time
	Done    bool
	Tags    []string
}
