package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// DepartmentRepository persists departments. Lookups return
// domain.ErrDepartmentNotFound when no record matches.
type DepartmentRepository interface {
	List(ctx context.Context) ([]*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, department *domain.Department) (*domain.Department, error)
	Rename(ctx context.Context, id, name string) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
