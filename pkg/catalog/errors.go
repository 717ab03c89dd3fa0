package catalog

import "github.com/pkg/errors"

var ErrMissingTitle = errors.New("titulo must be provided in request body")
var ErrMissingReleaseYear = errors.New("anioLanzamiento must be provided in request body")
var ErrMissingImageRef = errors.New("imagen must be provided in request body")
var ErrMissingID = errors.New("album id must be provided in request body")

// Kind classifies a failure. The set is closed: every error surfaced by the
// store or the request decoding is one of these.
type Kind uint8

const (
	// KindDeserialization means the request body could not be bound.
	KindDeserialization Kind = iota + 1
	// KindPersistence means the database rejected or failed the operation.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindDeserialization:
		return "deserialization"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

// Error carries the Kind of a failure along with the operation and the cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String() + " error"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// DeserializationError wraps err as a KindDeserialization failure of op.
func DeserializationError(op string, err error) error {
	return &Error{Kind: KindDeserialization, Op: op, Err: err}
}

// PersistenceError wraps err as a KindPersistence failure of op.
func PersistenceError(op string, err error) error {
	return &Error{Kind: KindPersistence, Op: op, Err: err}
}

// KindOf returns the Kind of err. Errors that did not come through this
// package are treated as persistence failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}
