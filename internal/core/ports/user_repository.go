package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// UserUpdate carries the mutable fields of PUT /users/:id.
type UserUpdate struct {
	Email        string
	DepartmentID string
}

// UserRepository is the persistence gateway for user accounts.
// Lookup methods return domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindWithToken matches on both email and the currently stored refresh
	// token; a rotated-out token therefore no longer resolves.
	FindWithToken(ctx context.Context, email, refreshToken string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ChangePassword stores a new password hash and flags the account as
	// having changed its initial password.
	ChangePassword(ctx context.Context, id, passwordHash string) error
	UpdateToken(ctx context.Context, id, refreshToken string) error

	List(ctx context.Context) ([]*domain.User, error)
	SearchByName(ctx context.Context, name string) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context) (map[string]int64, error)
}
