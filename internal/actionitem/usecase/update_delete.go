package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"meeting-tracker/internal/actionitem"
	repo "meeting-tracker/internal/actionitem/repository"
	"meeting-tracker/internal/model"
)

// Update applies a partial update. Returns ErrActionItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input actionitem.UpdateInput) (actionitem.UpdateOutput, error) {
	existing, err := uc.getExisting(ctx, input.ID)
	if err != nil {
		return actionitem.UpdateOutput{}, err
	}

	opt := repo.UpdateOptions{
		ID:      existing.ID,
		Task:    existing.Task,
		Owner:   existing.Owner,
		DueDate: existing.DueDate,
		Done:    existing.Done,
		Tags:    existing.Tags,
	}
	if input.Task != nil {
		if strings.TrimSpace(*input.Task) == "" {
			return actionitem.UpdateOutput{}, actionitem.ErrEmptyTask
		}
		opt.Task = *input.Task
	}
	if input.Owner.Set {
		opt.Owner = input.Owner.Value
	}
	if input.DueDate.Set {
		due, err := model.ParseDueDate(input.DueDate.Value)
		if err != nil {
			return actionitem.UpdateOutput{}, actionitem.ErrInvalidDueDate
		}
		opt.DueDate = due
	}
	if input.Done != nil {
		opt.Done = *input.Done
	}
	if input.Tags.Set {
		opt.Tags = nil
		if input.Tags.Value != nil {
			opt.Tags = *input.Tags.Value
		}
	}

	item, err := uc.repo.Update(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return actionitem.UpdateOutput{}, err
	}
	if item.ID == "" {
		return actionitem.UpdateOutput{}, actionitem.ErrActionItemNotFound
	}
	return actionitem.UpdateOutput{Item: item}, nil
}

// Delete removes an action item. Returns ErrActionItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getExisting(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getExisting(ctx context.Context, id string) (model.ActionItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.ActionItem{}, actionitem.ErrActionItemNotFound
	}
	existing, err := uc.repo.GetOne(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getExisting GetOne: %v", err)
		return model.ActionItem{}, err
	}
	if existing.ID == "" {
		return model.ActionItem{}, actionitem.ErrActionItemNotFound
	}
	return existing, nil
}
