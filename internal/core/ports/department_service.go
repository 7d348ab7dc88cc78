package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

type DepartmentService interface {
	List(ctx context.Context) ([]*domain.Department, error)
	Create(ctx context.Context, name string) (*domain.Department, error)
	Rename(ctx context.Context, id, name string) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
