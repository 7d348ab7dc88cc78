package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// ProjectRepository persists projects and their member assignments.
// Lookups return domain.ErrProjectNotFound when no record matches.
type ProjectRepository interface {
	List(ctx context.Context) ([]*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	AssignMembers(ctx context.Context, id string, userIDs []string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountMembers(ctx context.Context, id string) (int64, error)
}
