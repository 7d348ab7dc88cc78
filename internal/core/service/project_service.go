package service

import (
	"context"
	"errors"
	"time"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type ProjectService struct {
	repo  ports.ProjectRepository
	users ports.UserRepository
}

func NewProjectService(repo ports.ProjectRepository, users ports.UserRepository) *ProjectService {
	return &ProjectService{repo: repo, users: users}
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := s.checkMembers(ctx, input.MemberIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		MemberIDs:   input.MemberIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ProjectService) AssignMembers(ctx context.Context, id string, userIDs []string) (*domain.Project, error) {
	if err := s.checkMembers(ctx, userIDs); err != nil {
		return nil, err
	}
	return s.repo.AssignMembers(ctx, id, userIDs)
}

// checkMembers rejects assignments that reference unknown users.
func (s *ProjectService) checkMembers(ctx context.Context, userIDs []string) error {
	for _, id := range userIDs {
		if _, err := s.users.FindByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
	}
	return nil
}
