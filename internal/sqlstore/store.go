package sqlstore

import (
	"context"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/postgres"
)

// Config holds the PostgreSQL connection settings.
type Config postgres.Config

// QueryDurationMetric is the histogram the Store records every operation in,
// labelled with the operation name and "ok" or "error".
const QueryDurationMetric = "sqlstore_query_duration_seconds"

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

func ToSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// Store persists albums in a relational table.
type Store struct {
	sqldb *sqlx.DB
	db    *postgres.DB
	psql  sq.StatementBuilderType
	sc    tools.StatsClient
}

type QueryValues struct {
	query string
	args  []interface{}
}

// New creates a Store on top of an open database handle. The placeholder
// format must match the driver behind sqldb.
func New(sqldb *sqlx.DB, ph sq.PlaceholderFormat, sc tools.StatsClient) *Store {
	sqldb.MapperFunc(ToSnakeCase)
	return &Store{
		sqldb: sqldb,
		psql:  sq.StatementBuilder.PlaceholderFormat(ph),
		sc:    sc,
	}
}

// NewPostgres creates a Store backed by PostgreSQL. Every operation runs
// through the pool's Do method, so the options' timeout and semaphore apply.
func NewPostgres(c Config, sc tools.StatsClient, ops ...postgres.Option) (*Store, error) {
	db, err := postgres.NewDB(postgres.Config(c), ops...)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres database")
	}
	s := New(sqlx.NewDb(db.SQLDB(), "postgres"), sq.Dollar, sc)
	s.db = db
	return s, nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return errors.Wrap(s.sqldb.PingContext(ctx), "ping database")
}

// Close releases the underlying pool.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return s.sqldb.Close()
}

// withConn runs fn on a connection dedicated to this call. The connection is
// returned to the pool on every exit path, including panics in fn.
func (s *Store) withConn(ctx context.Context, label string, fn func(context.Context, *sqlx.Conn) error) (err error) {
	start := time.Now()
	defer func() {
		s.observe(label, start, err)
	}()

	run := func(ctx context.Context) error {
		conn, err := s.sqldb.Connx(ctx)
		if err != nil {
			return errors.Wrap(err, "acquire connection")
		}
		defer conn.Close()
		return fn(ctx, conn)
	}

	if s.db == nil {
		return run(ctx)
	}
	return s.db.Do(ctx, label, func(ctx context.Context, _ postgres.Conn) error {
		return run(ctx)
	})
}

func (s *Store) observe(label string, start time.Time, err error) {
	if s.sc == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.sc.Histogram(QueryDurationMetric, time.Since(start).Seconds(), []string{label, result})
}
