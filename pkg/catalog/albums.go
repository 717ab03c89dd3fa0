package catalog

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

// Album is a single entry of the discography. ID is assigned by the store on
// insert and never changes afterwards.
type Album struct {
	ID          int64  `json:"id" db:"id_album"`
	Title       string `json:"titulo" db:"titulo"`
	ReleaseYear int    `json:"anioLanzamiento" db:"anio_lanzamiento"`
	ImageRef    string `json:"imagen" db:"imagen"`
}

// CreateAlbumRequest is the body of a create call. Fields are nullable so that
// a missing key can be told apart from a zero value.
type CreateAlbumRequest struct {
	Title       null.String `json:"titulo"`
	ReleaseYear null.Int    `json:"anioLanzamiento"`
	ImageRef    null.String `json:"imagen"`
}

// UnmarshalJSON binds the body while refusing the object forms the null types
// would otherwise accept ({"String":"Red","Valid":true}) and a quoted year.
func (r *CreateAlbumRequest) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		if len(v) == 0 {
			continue
		}
		switch {
		case !isRequestField(k):
		case v[0] == '{' || v[0] == '[':
			return errors.Errorf("%s must be a scalar", k)
		case v[0] == '"' && strings.EqualFold(k, "anioLanzamiento"):
			return errors.Errorf("%s must be an integer", k)
		}
	}

	type plain CreateAlbumRequest
	return json.Unmarshal(b, (*plain)(r))
}

func isRequestField(k string) bool {
	return strings.EqualFold(k, "titulo") ||
		strings.EqualFold(k, "anioLanzamiento") ||
		strings.EqualFold(k, "imagen")
}

// Validate reports the first required field that was not provided.
func (r CreateAlbumRequest) Validate() error {
	switch {
	case !r.Title.Valid:
		return ErrMissingTitle
	case !r.ReleaseYear.Valid:
		return ErrMissingReleaseYear
	case !r.ImageRef.Valid:
		return ErrMissingImageRef
	}
	return nil
}

// Album returns the album described by the request, without an ID.
func (r CreateAlbumRequest) Album() Album {
	return Album{
		Title:       r.Title.String,
		ReleaseYear: int(r.ReleaseYear.Int64),
		ImageRef:    r.ImageRef.String,
	}
}

type CreateAlbumResponse struct {
	ID int64 `json:"id"`
}

type ListAlbumsRes struct {
	Albums []Album `json:"albums"`
}

// DeleteAlbumRequest identifies the album to remove. On the wire it is a bare
// integer, not an object.
type DeleteAlbumRequest struct {
	ID int64
}
