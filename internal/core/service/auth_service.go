package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

const refreshTokenLength = 32

// AuthService implements registration, login, token refresh, password change
// and refresh-session validation.
type AuthService struct {
	repo      ports.UserRepository
	tokens    ports.TokenStore
	jwtSecret string
	accessTTL time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenStore, jwtSecret string, accessTTL time.Duration, log zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &AuthService{repo: repo, tokens: tokens, jwtSecret: jwtSecret, accessTTL: accessTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.PublicUser, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		DepartmentID: input.DepartmentID,
		Profile: domain.Profile{
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.PublicUser, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedCredential) {
			s.log.Error().Str("user_id", user.ID).Msg("stored credential is malformed")
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !ok {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user.Public(), pair, nil
}

// Refresh mints a new token pair for the subject of an already verified
// access token and rotates the stored refresh token.
func (s *AuthService) Refresh(ctx context.Context, email string) (*ports.TokenPair, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := VerifyPassword(oldPassword, user.PasswordHash)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedCredential) {
			s.log.Error().Str("user_id", user.ID).Msg("stored credential is malformed")
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.ChangePassword(ctx, userID, hash)
}

// ValidateSession checks a cookie-presented refresh token against the stored
// one and returns the minimal identity projection on success.
func (s *AuthService) ValidateSession(ctx context.Context, email, refreshToken string) (*domain.SessionIdentity, error) {
	if email == "" || refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindWithToken(ctx, email, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	live, err := s.tokens.Valid(ctx, user.ID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, domain.ErrInvalidToken
	}

	return &domain.SessionIdentity{
		ID:        user.ID,
		FirstName: user.Profile.FirstName,
		Email:     user.Email,
	}, nil
}

// issueTokens signs a new access token, mints a random refresh token and
// rotates the persisted one.
func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	access, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateToken(ctx, user.ID, refresh); err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, user.ID, refresh); err != nil {
		return nil, err
	}

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) signAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"uid":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newRefreshToken returns an unpredictable per-session token. Each call
// produces a fresh value so rotation invalidates the previous one.
func newRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
