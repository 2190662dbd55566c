package postgre

import (
	"github.com/Masterminds/squirrel"
)

const (
	transcriptsTable = "transcripts"
	actionItemsTable = "action_items"
)

var (
	transcriptColumns = []string{"id", "text", "created_at"}
	actionItemColumns = []string{"id", "transcript_id", "task", "owner", "due_date", "done", "tags", "created_at"}
)

func (r *implRepository) buildGetOneQuery(id string) squirrel.SelectBuilder {
	return r.sq.Select(transcriptColumns...).
		From(transcriptsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)
}

func (r *implRepository) buildItemsQuery(transcriptID string) squirrel.SelectBuilder {
	return r.sq.Select(actionItemColumns...).
		From(actionItemsTable).
		Where(squirrel.Eq{"transcript_id": transcriptID}).
		OrderBy("created_at ASC")
}

func (r *implRepository) buildListRecentQuery(limit int) squirrel.SelectBuilder {
	return r.sq.Select("t.id", "t.text", "t.created_at", "COUNT(a.id) AS item_count").
		From(transcriptsTable + " t").
		LeftJoin(actionItemsTable + " a ON a.transcript_id = t.id").
		GroupBy("t.id").
		OrderBy("t.created_at DESC").
		Limit(uint64(limit))
}

// buildPruneQuery deletes every transcript outside the newest keep rows.
// Their action items go with them through ON DELETE CASCADE.
func (r *implRepository) buildPruneQuery(keep int) squirrel.DeleteBuilder {
	return r.sq.Delete(transcriptsTable).
		Where("id IN (SELECT id FROM transcripts ORDER BY created_at DESC OFFSET ?)", keep)
}
