package service

import (
	"context"
	"time"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type DepartmentService struct {
	repo ports.DepartmentRepository
}

func NewDepartmentService(repo ports.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, name string) (*domain.Department, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Department{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *DepartmentService) Rename(ctx context.Context, id, name string) (*domain.Department, error) {
	return s.repo.Rename(ctx, id, name)
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
