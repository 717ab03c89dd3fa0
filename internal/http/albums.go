package http

import (
	cl "discography/pkg/catalog"
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
	"github.com/twitsprout/tools/runtime"
)

// CreateAlbum stores the album in the request body and responds with the id
// it was given.
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseCreateAlbumRequest(r)
	if err != nil {
		h.fail(w, r, "[CreateAlbum] error parsing request", err)
		return
	}

	res, err := h.AlbumStore.CreateAlbum(ctx, req.Album())
	if err != nil {
		h.fail(w, r, "[CreateAlbum] error creating album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res.ID, http.StatusCreated)
}

// ListAlbums get the list of all the albums
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.AlbumStore.ListAlbums(ctx)
	if err != nil {
		h.fail(w, r, "[ListAlbums] error getting albums list", err)
		return
	}

	albums := res.Albums
	if albums == nil {
		albums = []cl.Album{}
	}
	_ = httputils.WriteJSON(w, v, albums, http.StatusOK)
}

// DeleteAlbum removes the album whose id is the request body. Unknown ids are
// not an error.
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseDeleteAlbumRequest(r)
	if err != nil {
		h.fail(w, r, "[DeleteAlbum] error parsing request", err)
		return
	}

	if err := h.AlbumStore.DeleteAlbum(ctx, req); err != nil {
		h.fail(w, r, "[DeleteAlbum] error deleting album", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func parseCreateAlbumRequest(r *http.Request) (cl.CreateAlbumRequest, error) {
	var req cl.CreateAlbumRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		return req, cl.DeserializationError("parseCreateAlbumRequest", err)
	}
	if err := req.Validate(); err != nil {
		return req, cl.DeserializationError("parseCreateAlbumRequest", err)
	}
	return req, nil
}

func parseDeleteAlbumRequest(r *http.Request) (cl.DeleteAlbumRequest, error) {
	var req cl.DeleteAlbumRequest

	var id *int64
	if err := httputils.ReadJSON(r.Body, &id); err != nil {
		return req, cl.DeserializationError("parseDeleteAlbumRequest", err)
	}
	if id == nil {
		return req, cl.DeserializationError("parseDeleteAlbumRequest", cl.ErrMissingID)
	}

	req = cl.DeleteAlbumRequest{
		ID: *id,
	}
	return req, nil
}

// fail logs err and responds with the status for its kind. Clients get no
// error body.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Logger.Error(msg,
		"request_id", requestid.Get(r.Context()),
		"kind", cl.KindOf(err).String(),
		"details", err.Error(),
		"stacktrace", runtime.Stacktrace(1),
	)
	w.WriteHeader(statusFromError(err))
}

func statusFromError(err error) int {
	switch cl.KindOf(err) {
	case cl.KindDeserialization, cl.KindPersistence:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
