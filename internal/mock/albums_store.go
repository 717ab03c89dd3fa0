package mock

import (
	"context"
	cl "discography/pkg/catalog"
)

// AlbumStore implements internal.AlbumStore with injectable functions.
type AlbumStore struct {
	CreateAlbumFn func(ctx context.Context, album cl.Album) (cl.CreateAlbumResponse, error)
	ListAlbumsFn  func(ctx context.Context) (cl.ListAlbumsRes, error)
	DeleteAlbumFn func(ctx context.Context, req cl.DeleteAlbumRequest) error
}

// CreateAlbum proxies the request to the CreateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) CreateAlbum(ctx context.Context, album cl.Album) (cl.CreateAlbumResponse, error) {
	return s.CreateAlbumFn(ctx, album)
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {
	return s.ListAlbumsFn(ctx)
}

// DeleteAlbum proxies the request to the DeleteAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) DeleteAlbum(ctx context.Context, req cl.DeleteAlbumRequest) error {
	return s.DeleteAlbumFn(ctx, req)
}
