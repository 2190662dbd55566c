package postgre

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"meeting-tracker/internal/transcript/repository"
	"meeting-tracker/pkg/log"
	"meeting-tracker/pkg/postgres"
)

type implRepository struct {
	db  postgres.DB
	l   log.Logger
	sq  squirrel.StatementBuilderType
	now func() time.Time
}

// New creates a new PostgreSQL-backed Repository for transcripts.
func New(db postgres.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("transcript/repository/postgre: db is required")
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
	return fmt.Sprintf("transcript/repository/postgre.%s", method)
}
