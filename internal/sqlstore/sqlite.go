package sqlstore

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"

	// Blank import of sqlite driver.
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLite creates a Store backed by the SQLite database at path. The schema
// is expected to exist already (see db/migrations/sqlite3).
func NewSQLite(path string, sc tools.StatsClient) (*Store, error) {
	sqldb, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}
	// Every connection to an in-memory database gets its own empty copy.
	if isMemoryPath(path) {
		sqldb.SetMaxOpenConns(1)
	}
	return New(sqldb, sq.Question, sc), nil
}

func isMemoryPath(path string) bool {
	return strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory")
}
