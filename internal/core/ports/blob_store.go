package ports

import (
	"context"
	"io"
)

// BlobStore persists uploaded file contents outside the database.
type BlobStore interface {
	// Save writes r under the given storage name and returns the stored
	// path and byte count.
	Save(ctx context.Context, name string, r io.Reader) (path string, size int64, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
