package main

import (
	"flag"
	"fmt"
	"log"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	driver = flag.String("driver", "postgres", "postgres or sqlite3")
	db     = flag.String("database", "postgres", "")
	host   = flag.String("host", "localhost:5432", "")
	user   = flag.String("user", "postgres", "")
	pass   = flag.String("password", "", "")
	path   = flag.String("sqlite-path", "discography.db", "")
	down   = flag.Bool("down", false, "roll every migration back")
)

func main() {
	flag.Parse()

	var dsn string
	switch *driver {
	case "postgres":
		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", *user, *pass, *host, *db)
	case "sqlite3":
		dsn = "sqlite3://" + *path
	default:
		log.Fatalf("unsupported driver %q", *driver)
	}

	m, err := migrate.New("file://db/migrations/"+*driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}
}
