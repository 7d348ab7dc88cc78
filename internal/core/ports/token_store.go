package ports

import "context"

// TokenStore keeps the currently valid refresh token per user with a TTL so
// expired sessions are rejected even though the token also lives on the user
// record.
type TokenStore interface {
	Save(ctx context.Context, userID, token string) error
	// Valid reports whether token is the live refresh token for userID.
	Valid(ctx context.Context, userID, token string) (bool, error)
	Revoke(ctx context.Context, userID string) error
}
