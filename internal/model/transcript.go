package model

import "time"

// MaxHistory is how many transcripts are retained; older ones are pruned on insert.
const MaxHistory = 5

// SnippetLength is the number of characters shown in history previews.
const SnippetLength = 150

// Transcript is a processed meeting transcript and the action items extracted from it.
type Transcript struct {
	ID          string       `db:"id"`
	Text        string       `db:"text"`
	CreatedAt   time.Time    `db:"created_at"`
	ActionItems []ActionItem `db:"-"`
}

// TranscriptSummary is the history list projection of a Transcript.
type TranscriptSummary struct {
	ID        string    `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	ItemCount int       `db:"item_count"`
}

// Snippet returns the first SnippetLength characters of text, with an
// ellipsis when it was cut.
func Snippet(text string) string {
	r := []rune(text)
	if len(r) <= SnippetLength {
		return text
	}
	return string(r[:SnippetLength]) + "…"
}
