package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Profile holds the personal details attached to a user account.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FileID    string `json:"file_id,omitempty"`
}

// User models an account in the system. PasswordHash is the colon-delimited
// salt:key pair produced by the credential hasher; RefreshToken is the
// currently valid refresh token, empty until first issued.
type User struct {
	ID              string
	Email           string
	PasswordHash    string
	RefreshToken    string
	Role            string
	DepartmentID    string
	ChangedPassword bool
	Profile         Profile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PublicUser is the outward projection of a User. It has no password field at
// all, so a credential can never leak through response mapping.
type PublicUser struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	DepartmentID    string    `json:"department_id,omitempty"`
	ChangedPassword bool      `json:"changed_password"`
	Profile         Profile   `json:"profile"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Public builds the outward projection for u.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		Role:            u.Role,
		DepartmentID:    u.DepartmentID,
		ChangedPassword: u.ChangedPassword,
		Profile:         u.Profile,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// SessionIdentity is the minimal identity returned by refresh-session
// validation. Never carries more than id, first name and email.
type SessionIdentity struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}
