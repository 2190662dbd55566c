package postgre

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meeting-tracker/internal/model"
	repo "meeting-tracker/internal/transcript/repository"
	"meeting-tracker/pkg/postgres"
)

// CreateWithItems inserts the transcript, its items and the history prune in one transaction.
func (r *implRepository) CreateWithItems(ctx context.Context, opt repo.CreateOptions) (model.Transcript, error) {
	now := r.now()
	t := model.Transcript{
		ID:        uuid.NewString(),
		Text:      opt.Text,
		CreatedAt: now,
	}

	ins := r.sq.Insert(actionItemsTable).Columns(actionItemColumns...)
	for i, it := range opt.Items {
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		item := model.ActionItem{
			ID:           uuid.NewString(),
			TranscriptID: &t.ID,
			Task:         it.Task,
			Owner:        it.Owner,
			DueDate:      it.DueDate,
			Tags:         tags,
			// Keep extraction order stable under ORDER BY created_at.
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
		ins = ins.Values(item.ID, item.TranscriptID, item.Task, item.Owner, item.DueDate, item.Done, item.Tags, item.CreatedAt)
		t.ActionItems = append(t.ActionItems, item)
	}

	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := r.sq.Insert(transcriptsTable).
			Columns(transcriptColumns...).
			Values(t.ID, t.Text, t.CreatedAt).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		if len(t.ActionItems) > 0 {
			query, args, err = ins.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return err
			}
		}

		if opt.KeepLatest > 0 {
			query, args, err = r.buildPruneQuery(opt.KeepLatest).ToSql()
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return err
			}
			if n := tag.RowsAffected(); n > 0 {
				r.l.Debugf(ctx, "%s: pruned %d old transcript(s)", r.dsn("CreateWithItems"), n)
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateWithItems"), err)
		return model.Transcript{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOne returns the transcript with its items ordered by creation.
// Returns zero-value Transcript when not found.
func (r *implRepository) GetOne(ctx context.Context, id string) (model.Transcript, error) {
	query, args, err := r.buildGetOneQuery(id).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOne"), err)
		return model.Transcript{}, repo.ErrFailedToGet
	}

	var t model.Transcript
	if err := pgxscan.Get(ctx, r.db, &t, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return model.Transcript{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Transcript{}, repo.ErrFailedToGet
	}

	query, args, err = r.buildItemsQuery(t.ID).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build items: %v", r.dsn("GetOne"), err)
		return model.Transcript{}, repo.ErrFailedToGet
	}
	if err := pgxscan.Select(ctx, r.db, &t.ActionItems, query, args...); err != nil {
		r.l.Errorf(ctx, "%s items: %v", r.dsn("GetOne"), err)
		return model.Transcript{}, repo.ErrFailedToGet
	}
	if t.ActionItems == nil {
		t.ActionItems = []model.ActionItem{}
	}
	return t, nil
}

// ListRecent returns the newest transcripts with their item counts.
func (r *implRepository) ListRecent(ctx context.Context, opt repo.ListRecentOptions) ([]model.TranscriptSummary, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = model.MaxHistory
	}
	query, args, err := r.buildListRecentQuery(limit).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListRecent"), err)
		return nil, repo.ErrFailedToList
	}

	var out []model.TranscriptSummary
	if err := pgxscan.Select(ctx, r.db, &out, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecent"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
