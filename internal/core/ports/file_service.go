package ports

import (
	"context"
	"io"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// UploadInput describes one incoming multipart file.
type UploadInput struct {
	Name        string
	ContentType string
	Content     io.Reader
}

type FileService interface {
	Save(ctx context.Context, input UploadInput) (*domain.StoredFile, error)
	// Open returns the metadata and an open reader for the stored blob.
	// The caller owns closing the reader.
	Open(ctx context.Context, id string) (*domain.StoredFile, io.ReadCloser, error)
	// Delete removes the metadata record and schedules the blob for
	// asynchronous removal from disk.
	Delete(ctx context.Context, id string) error
}
