package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSplitFields(t *testing.T) {
	msg, kv, ok := splitFields([]any{"LLM extraction successful", "provider", "Groq", "items", 2})
	assert.True(t, ok)
	assert.Equal(t, "LLM extraction successful", msg)
	assert.Equal(t, []any{"provider", "Groq", "items", 2}, kv)

	_, _, ok = splitFields([]any{"Failed to connect: ", assert.AnError})
	assert.False(t, ok)

	_, _, ok = splitFields([]any{"odd", 1, "x"})
	assert.False(t, ok)
}

func TestLogger_StructuredAndRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	l.Info(ctx, "LLM extraction successful", "provider", "Groq")
	l.Warnf(context.Background(), "uc.Process: %v", "boom")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "LLM extraction successful", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Groq", fields["provider"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "uc.Process: boom", entries[1].Message)
}
