package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// FileRepository persists upload metadata. Lookups return
// domain.ErrFileNotFound when no record matches.
type FileRepository interface {
	Create(ctx context.Context, file *domain.StoredFile) (*domain.StoredFile, error)
	FindByID(ctx context.Context, id string) (*domain.StoredFile, error)
	Delete(ctx context.Context, id string) error
}
