package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		want    *time.Time
		wantErr bool
	}{
		{name: "nil", in: nil},
		{name: "blank", in: strPtr("  ")},
		{name: "date", in: strPtr("2026-03-01"), want: timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339", in: strPtr("2026-03-01T10:00:00+02:00"), want: timePtr(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))},
		{name: "free text", in: strPtr("next Friday"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDueDate)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v", got)
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet("short"))

	exact := strings.Repeat("a", SnippetLength)
	assert.Equal(t, exact, Snippet(exact))

	long := strings.Repeat("é", SnippetLength+10)
	got := Snippet(long)
	assert.Equal(t, strings.Repeat("é", SnippetLength)+"…", got)
}
