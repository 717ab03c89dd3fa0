package internal

import (
	"context"
	cl "discography/pkg/catalog"
)

// AlbumStore is the persistence boundary for albums. Implementations return
// *catalog.Error values of kind KindPersistence on failure.
type AlbumStore interface {
	CreateAlbum(ctx context.Context, album cl.Album) (cl.CreateAlbumResponse, error)
	ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error)
	DeleteAlbum(ctx context.Context, req cl.DeleteAlbumRequest) error
}
