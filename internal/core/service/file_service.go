package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

// FileService stores upload blobs through the blob store and their metadata
// through the file repository. Deletions remove the metadata synchronously
// and hand the blob to the removal queue.
type FileService struct {
	repo    ports.FileRepository
	blobs   ports.BlobStore
	removal ports.FileRemovalQueue
	log     zerolog.Logger
}

func NewFileService(repo ports.FileRepository, blobs ports.BlobStore, removal ports.FileRemovalQueue, log zerolog.Logger) *FileService {
	return &FileService{repo: repo, blobs: blobs, removal: removal, log: log}
}

func (s *FileService) Save(ctx context.Context, input ports.UploadInput) (*domain.StoredFile, error) {
	id := uuid.NewString()

	path, size, err := s.blobs.Save(ctx, id, input.Content)
	if err != nil {
		return nil, err
	}

	file := &domain.StoredFile{
		ID:          id,
		Name:        input.Name,
		Path:        path,
		ContentType: input.ContentType,
		Size:        size,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, file)
	if err != nil {
		// metadata write failed, do not leave an orphan blob behind
		if rmErr := s.blobs.Remove(ctx, path); rmErr != nil {
			s.log.Error().Err(rmErr).Str("path", path).Msg("orphan blob cleanup failed")
		}
		return nil, err
	}
	return created, nil
}

func (s *FileService) Open(ctx context.Context, id string) (*domain.StoredFile, io.ReadCloser, error) {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Open(ctx, file.Path)
	if err != nil {
		return nil, nil, err
	}
	return file, rc, nil
}

func (s *FileService) Delete(ctx context.Context, id string) error {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removal.Enqueue(*file)
	return nil
}
