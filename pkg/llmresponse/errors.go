package llmresponse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON is matched by errors.Is for every *InvalidJSONError.
	ErrInvalidJSON = errors.New("invalid JSON from LLM")

	// ErrValidationFailed is matched by errors.Is for every *ValidationError.
	ErrValidationFailed = errors.New("LLM response validation failed")
)

// snippetLen is how much of an unparseable response is kept for diagnostics.
const snippetLen = 200

// InvalidJSONError reports model output that could not be parsed as JSON.
type InvalidJSONError struct {
	Snippet string
}

func newInvalidJSONError(text string) *InvalidJSONError {
	runes := []rune(text)
	if len(runes) > snippetLen {
		runes = runes[:snippetLen]
	}
	return &InvalidJSONError{Snippet: string(runes)}
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidJSON, e.Snippet)
}

func (e *InvalidJSONError) Is(target error) bool {
	return target == ErrInvalidJSON
}

// ValidationError reports the first schema rule a parsed value violated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
