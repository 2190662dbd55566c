package repository

import (
	"context"

	"meeting-tracker/internal/model"
)

// Repository defines all data access methods for action items.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.ActionItem, error)
	// GetOne returns a zero-value ActionItem (ID == "") when not found.
	GetOne(ctx context.Context, id string) (model.ActionItem, error)
	Update(ctx context.Context, opt UpdateOptions) (model.ActionItem, error)
	Delete(ctx context.Context, id string) error
}
