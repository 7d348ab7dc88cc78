package service

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

// UserService exposes account management on top of the user repository.
// Every read path returns the public projection, never the raw record.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]*domain.PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return publicUsers(users), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *UserService) Search(ctx context.Context, name string) ([]*domain.PublicUser, error) {
	users, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return publicUsers(users), nil
}

func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.PublicUser, error) {
	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) error {
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return domain.ErrForbidden
	}
	return s.repo.UpdateRole(ctx, id, role)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func publicUsers(users []*domain.User) []*domain.PublicUser {
	out := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}
