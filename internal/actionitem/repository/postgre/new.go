package postgre

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"meeting-tracker/internal/actionitem/repository"
	"meeting-tracker/pkg/log"
	"meeting-tracker/pkg/postgres"
)

const (
	actionItemsTable = "action_items"

	// foreignKeyViolation is the Postgres SQLSTATE for a missing referenced row.
	foreignKeyViolation = "23503"
)

var actionItemColumns = []string{"id", "transcript_id", "task", "owner", "due_date", "done", "tags", "created_at"}

type implRepository struct {
	db  postgres.DB
	l   log.Logger
	sq  squirrel.StatementBuilderType
	now func() time.Time
}

// New creates a new PostgreSQL-backed Repository for action items.
func New(db postgres.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("actionitem/repository/postgre: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		sq:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("actionitem/repository/postgre.%s", method)
}
