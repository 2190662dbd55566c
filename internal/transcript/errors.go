package transcript

import "errors"

var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrEmptyText          = errors.New("transcript cannot be empty")
	ErrTextTooLong        = errors.New("transcript is too long (max 50,000 characters)")
)

// MaxTextLength is the longest transcript accepted, in characters.
const MaxTextLength = 50000
