package ports

import "github.com/chronodesk/timetracking-api/internal/core/domain"

// FileRemovalQueue accepts blobs whose on-disk contents should be removed
// asynchronously, off the request path.
type FileRemovalQueue interface {
	Enqueue(file domain.StoredFile)
}
