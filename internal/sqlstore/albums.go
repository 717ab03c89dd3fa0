package sqlstore

import (
	"context"
	cl "discography/pkg/catalog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const tableAlbums = "albums"

const (
	albumsColumnID          = "id_album"
	albumsColumnTitle       = "titulo"
	albumsColumnReleaseYear = "anio_lanzamiento"
	albumsColumnImageRef    = "imagen"
)

var albumsColumns = []string{
	albumsColumnID,
	albumsColumnTitle,
	albumsColumnReleaseYear,
	albumsColumnImageRef,
}

// CreateAlbum inserts a new album and returns the ID the table generated for
// it. Any ID set on album is ignored.
func (s *Store) CreateAlbum(ctx context.Context, album cl.Album) (cl.CreateAlbumResponse, error) {
	var res cl.CreateAlbumResponse

	qv, err := s.buildCreateAlbumQuery(album)
	if err != nil {
		return res, cl.PersistenceError("create album", errors.Wrap(err, "build create album query"))
	}
	err = s.withConn(ctx, "create_album", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, qv.query, qv.args...).Scan(&res.ID)
	})
	if err != nil {
		return res, cl.PersistenceError("create album", errors.Wrap(err, "execute create album query"))
	}
	return res, nil
}

func (s *Store) buildCreateAlbumQuery(album cl.Album) (QueryValues, error) {
	q, args, err := s.psql.
		Insert(tableAlbums).
		Columns(albumsColumnTitle, albumsColumnReleaseYear, albumsColumnImageRef).
		Values(album.Title, album.ReleaseYear, album.ImageRef).
		Suffix("RETURNING " + albumsColumnID).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "create album build query into SQL string")
}

// ListAlbums returns every album in the table, in whatever order the database
// yields them. An empty table gives an empty, non-nil slice.
func (s *Store) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {
	var res cl.ListAlbumsRes

	r := []cl.Album{}
	qv, err := s.buildListAlbumsQuery()
	if err != nil {
		return res, cl.PersistenceError("list albums", errors.Wrap(err, "build list albums query"))
	}
	err = s.withConn(ctx, "list_albums", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, cl.PersistenceError("list albums", errors.Wrap(err, "execute list albums query"))
	}

	res = cl.ListAlbumsRes{
		Albums: r,
	}
	return res, nil
}

func (s *Store) buildListAlbumsQuery() (QueryValues, error) {
	q, args, err := s.psql.
		Select(albumsColumns...).
		From(tableAlbums).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list albums build query into SQL string")
}

// DeleteAlbum removes the album with the given ID. Deleting an ID that does
// not exist is not an error.
func (s *Store) DeleteAlbum(ctx context.Context, req cl.DeleteAlbumRequest) error {
	qv, err := s.buildDeleteAlbumQuery(req.ID)
	if err != nil {
		return cl.PersistenceError("delete album", errors.Wrap(err, "build delete album query"))
	}
	err = s.withConn(ctx, "delete_album", func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, qv.query, qv.args...)
		return err
	})
	if err != nil {
		return cl.PersistenceError("delete album", errors.Wrap(err, "execute delete album query"))
	}
	return nil
}

func (s *Store) buildDeleteAlbumQuery(id int64) (QueryValues, error) {
	q, args, err := s.psql.
		Delete(tableAlbums).
		Where(sq.Eq{tableColumn(tableAlbums, albumsColumnID): id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete album build query into SQL string")
}
