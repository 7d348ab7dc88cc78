package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]*domain.PublicUser, error)
	Get(ctx context.Context, id string) (*domain.PublicUser, error)
	Search(ctx context.Context, name string) ([]*domain.PublicUser, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.PublicUser, error)
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}
