package main

import (
	"context"
	"discography/internal/http"
	"discography/internal/sqlstore"
	"discography/internal/stats"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/postgres"
	"github.com/twitsprout/tools/zap"
)

var version string

type variables struct {
	Addr         string        `required:"true" envconfig:"addr"`
	AppName      string        `required:"true" envconfig:"app_name"`
	DBDriver     string        `default:"postgres" envconfig:"db_driver"`
	SQLitePath   string        `default:"discography.db" envconfig:"sqlite_path"`
	PostgresHost string        `required:"false" envconfig:"postgres_host"`
	PostgresPort int           `required:"false" envconfig:"postgres_port"`
	PostgresDB   string        `required:"false" envconfig:"postgres_db"`
	PostgresUser string        `required:"false" envconfig:"postgres_user"`
	PostgresPass string        `required:"false" envconfig:"postgres_pass"`
	QueryTimeout time.Duration `default:"30s" envconfig:"query_timeout"`
	LogLevel     string        `default:"info" envconfig:"log_level"`
	Metrics      bool          `default:"true" envconfig:"metrics"`
}

var v variables

func init() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("discography", &v)
	fmt.Println("Env variables :", redacted(v))
}

func main() {
	logger := zap.New(v.AppName, version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	var sc tools.StatsClient
	if v.Metrics {
		sc = stats.NewExpvar()
	}

	store, err := newStore(v, sc)
	if err != nil {
		logger.Error("failed to open album store", "driver", v.DBDriver, "error", err.Error())
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		logger.Warn("album store not reachable yet", "driver", v.DBDriver, "error", err.Error())
	}

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("discography root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		AppName:    v.AppName,
		Logger:     logger,
		Version:    version,
		Stats:      sc,
		AlbumStore: store,
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)
}

func newStore(v variables, sc tools.StatsClient) (*sqlstore.Store, error) {
	switch v.DBDriver {
	case "postgres":
		return newPostgres(v, sc)
	case "sqlite3":
		return sqlstore.NewSQLite(v.SQLitePath, sc)
	}
	return nil, errors.Errorf("unsupported db driver %q", v.DBDriver)
}

func newPostgres(v variables, sc tools.StatsClient) (*sqlstore.Store, error) {
	if v.PostgresHost == "" || v.PostgresDB == "" || v.PostgresUser == "" {
		return nil, errors.New("postgres_host, postgres_db and postgres_user are required for the postgres driver")
	}
	pgConfig := sqlstore.Config{
		Host:       v.PostgresHost,
		Name:       v.PostgresDB,
		Password:   v.PostgresPass,
		Username:   v.PostgresUser,
		DisableSSL: true,
	}
	// Only use a Postgres port if one was provided
	if v.PostgresPort > 0 {
		pgConfig.Port = v.PostgresPort
	}
	return sqlstore.NewPostgres(pgConfig, sc, postgres.WithTimeout(v.QueryTimeout))
}

func redacted(v variables) variables {
	if v.PostgresPass != "" {
		v.PostgresPass = "******"
	}
	return v
}
