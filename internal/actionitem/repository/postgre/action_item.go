package postgre

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	repo "meeting-tracker/internal/actionitem/repository"
	"meeting-tracker/internal/model"
)

var returningColumns = "RETURNING " + strings.Join(actionItemColumns, ", ")

// Create inserts a new action item and returns the stored row.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.ActionItem, error) {
	tags := opt.Tags
	if tags == nil {
		tags = []string{}
	}
	query, args, err := r.sq.Insert(actionItemsTable).
		Columns(actionItemColumns...).
		Values(uuid.NewString(), opt.TranscriptID, opt.Task, opt.Owner, opt.DueDate, false, tags, r.now()).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("Create"), err)
		return model.ActionItem{}, repo.ErrFailedToInsert
	}

	var item model.ActionItem
	if err := pgxscan.Get(ctx, r.db, &item, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return model.ActionItem{}, repo.ErrTranscriptNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.ActionItem{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOne retrieves an action item by ID.
// Returns zero-value ActionItem when not found.
func (r *implRepository) GetOne(ctx context.Context, id string) (model.ActionItem, error) {
	query, args, err := r.sq.Select(actionItemColumns...).
		From(actionItemsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOne"), err)
		return model.ActionItem{}, repo.ErrFailedToGet
	}

	var item model.ActionItem
	if err := pgxscan.Get(ctx, r.db, &item, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return model.ActionItem{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.ActionItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// Update overwrites the mutable columns of an action item.
// Returns zero-value ActionItem when the row no longer exists.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.ActionItem, error) {
	tags := opt.Tags
	if tags == nil {
		tags = []string{}
	}
	query, args, err := r.sq.Update(actionItemsTable).
		SetMap(map[string]any{
			"task":     opt.Task,
			"owner":    opt.Owner,
			"due_date": opt.DueDate,
			"done":     opt.Done,
			"tags":     tags,
		}).
		Where(squirrel.Eq{"id": opt.ID}).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("Update"), err)
		return model.ActionItem{}, repo.ErrFailedToUpdate
	}

	var item model.ActionItem
	if err := pgxscan.Get(ctx, r.db, &item, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return model.ActionItem{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.ActionItem{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// Delete removes an action item by ID.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sq.Delete(actionItemsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
