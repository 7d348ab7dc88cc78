package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// CreateProjectInput is the payload accepted by project creation.
type CreateProjectInput struct {
	Name        string
	Description string
	MemberIDs   []string
}

type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	AssignMembers(ctx context.Context, id string, userIDs []string) (*domain.Project, error)
}
