package model

import (
	"errors"
	"strings"
	"time"
)

// ActionItem is a persisted task. TranscriptID is nil for manually created items.
type ActionItem struct {
	ID           string     `db:"id"`
	TranscriptID *string    `db:"transcript_id"`
	Task         string     `db:"task"`
	Owner        *string    `db:"owner"`
	DueDate      *time.Time `db:"due_date"`
	Done         bool       `db:"done"`
	Tags         []string   `db:"tags"`
	CreatedAt    time.Time  `db:"created_at"`
}

var ErrInvalidDueDate = errors.New("invalid due date")

// ParseDueDate accepts a calendar date (2006-01-02) or an RFC3339 timestamp.
// A nil or blank input yields nil.
func ParseDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidDueDate
}
