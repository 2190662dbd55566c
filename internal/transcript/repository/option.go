package repository

import "time"

// CreateOptions holds parameters for inserting a transcript with its items.
type CreateOptions struct {
	Text       string
	Items      []ItemOptions
	KeepLatest int
}

// ItemOptions describes one action item to insert alongside a transcript.
type ItemOptions struct {
	Task    string
	Owner   *string
	DueDate *time.Time
	Tags    []string
}

// ListRecentOptions holds parameters for the history listing.
type ListRecentOptions struct {
	Limit int
}
