package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// RegisterInput is the payload accepted by registration.
type RegisterInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	DepartmentID string
}

// TokenPair is returned once per login/refresh and never stored beyond
// persisting the refresh token against the user.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error)
	Login(ctx context.Context, email, password string) (*domain.PublicUser, *TokenPair, error)
	// Refresh mints a fresh token pair for the subject of an already
	// verified access token and rotates the stored refresh token.
	Refresh(ctx context.Context, email string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	// ValidateSession checks a refresh token presented via cookie against the
	// stored one and returns a minimal identity projection.
	ValidateSession(ctx context.Context, email, refreshToken string) (*domain.SessionIdentity, error)
}
