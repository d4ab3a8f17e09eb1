package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/log"
)

// TimestampFormat is how instants are stored: UTC with fixed-width
// milliseconds, so string order equals time order.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Ping checks that the database is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
