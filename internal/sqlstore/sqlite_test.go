package sqlstore

import (
	"context"
	cl "discography/pkg/catalog"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("Unable to create sqlite instance: %s", err.Error())
	}
	t.Cleanup(func() { _ = s.Close() })

	schema, err := os.ReadFile("../../db/migrations/sqlite3/1_create_albums.up.sql")
	if err != nil {
		t.Fatalf("Unable to read schema: %s", err.Error())
	}
	if _, err := s.sqldb.Exec(string(schema)); err != nil {
		t.Fatalf("Unable to create schema: %s", err.Error())
	}
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	res, err := s.ListAlbums(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing empty table: %s", err.Error())
	}
	if res.Albums == nil || len(res.Albums) != 0 {
		t.Fatalf("expected an empty non-nil list, got %#v", res.Albums)
	}

	red := cl.Album{Title: "Red", ReleaseYear: 2012, ImageRef: "red.jpg"}
	created, err := s.CreateAlbum(ctx, red)
	if err != nil {
		t.Fatalf("unexpected error creating album: %s", err.Error())
	}
	if created.ID <= 0 {
		t.Fatalf("expected a positive id, got %d", created.ID)
	}

	lover, err := s.CreateAlbum(ctx, cl.Album{Title: "Lover", ReleaseYear: 2019, ImageRef: "lover.jpg"})
	if err != nil {
		t.Fatalf("unexpected error creating album: %s", err.Error())
	}
	if lover.ID <= created.ID {
		t.Fatalf("expected ids to increase, got %d after %d", lover.ID, created.ID)
	}

	if err := s.DeleteAlbum(ctx, cl.DeleteAlbumRequest{ID: lover.ID}); err != nil {
		t.Fatalf("unexpected error deleting album: %s", err.Error())
	}
	if err := s.DeleteAlbum(ctx, cl.DeleteAlbumRequest{ID: lover.ID + 100}); err != nil {
		t.Fatalf("unexpected error deleting missing album: %s", err.Error())
	}

	res, err = s.ListAlbums(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing albums: %s", err.Error())
	}
	red.ID = created.ID
	if exp := []cl.Album{red}; !cmp.Equal(exp, res.Albums) {
		t.Fatalf("unexpected albums: %s", cmp.Diff(exp, res.Albums))
	}
	assertConnsReleased(t, s)
}

func TestSQLiteReleasesConnectionOnFailure(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	if _, err := s.sqldb.Exec("DROP TABLE albums"); err != nil {
		t.Fatalf("Unable to drop table: %s", err.Error())
	}

	for i := 0; i < 3; i++ {
		if _, err := s.ListAlbums(ctx); err == nil || cl.KindOf(err) != cl.KindPersistence {
			t.Fatalf("expected a persistence error, got %v", err)
		}
		if _, err := s.CreateAlbum(ctx, cl.Album{Title: "Red"}); err == nil {
			t.Fatalf("expected create to fail without a table")
		}
		assertConnsReleased(t, s)
	}

	// The single pooled connection must still be usable.
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("unexpected error pinging after failures: %s", err.Error())
	}
}

func TestNewSQLitePoolSize(t *testing.T) {
	table := []struct {
		path     string
		expConns int
	}{
		{path: ":memory:", expConns: 1},
		{path: "file::memory:?cache=shared", expConns: 1},
		{path: "file:albums?mode=memory", expConns: 1},
		{path: t.TempDir() + "/albums.db", expConns: 0},
	}
	for _, ts := range table {
		s, err := NewSQLite(ts.path, nil)
		if err != nil {
			t.Fatalf("Unable to create sqlite instance for %q: %s", ts.path, err.Error())
		}
		if got := s.sqldb.Stats().MaxOpenConnections; got != ts.expConns {
			t.Fatalf("unexpected max open connections for %q: %s", ts.path, cmp.Diff(ts.expConns, got))
		}
		_ = s.Close()
	}
}
