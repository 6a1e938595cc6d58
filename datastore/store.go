package datastore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a named blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing immutable dataset blobs.
type Store interface {
	// Put writes a blob atomically under the given name, replacing any
	// existing blob with that name.
	Put(ctx context.Context, name string, data []byte) error

	// Open opens a blob for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
