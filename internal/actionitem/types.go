package actionitem

import (
	"bytes"
	"encoding/json"

	"meeting-tracker/internal/model"
)

// Optional distinguishes an omitted JSON field (Set == false) from an
// explicit null (Set == true, Value == nil).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON implements json.Unmarshaler for Optional.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// --- UseCase Inputs ---

type CreateInput struct {
	TranscriptID *string
	Task         string
	Owner        *string
	DueDate      *string
	Tags         []string
}

// UpdateInput is a partial update; unset fields keep their stored value.
type UpdateInput struct {
	ID      string
	Task    *string
	Owner   Optional[string]
	DueDate Optional[string]
	Done    *bool
	Tags    Optional[[]string]
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.ActionItem
}

type UpdateOutput struct {
	Item model.ActionItem
}
