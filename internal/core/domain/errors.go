package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the API cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect password or email")

	// ErrMalformedCredential means a stored password hash does not split into
	// the expected salt:key pair. Login for that account cannot succeed.
	ErrMalformedCredential = errors.New("malformed stored credential")

	ErrInvalidToken = errors.New("invalid or expired token")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrDepartmentNotFound = errors.New("department not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrFileNotFound       = errors.New("file not found")

	ErrForbidden = errors.New("access forbidden")
)
