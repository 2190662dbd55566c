package actionitem

import "errors"

var (
	ErrActionItemNotFound = errors.New("action item not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrEmptyTask          = errors.New("task description is required")
	ErrInvalidDueDate     = errors.New("due date must be YYYY-MM-DD or RFC3339")
)
