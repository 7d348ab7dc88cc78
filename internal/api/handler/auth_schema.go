package handler

import "github.com/chronodesk/timetracking-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registrationRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=8"`
	FirstName    string `json:"first_name"    validate:"required"`
	LastName     string `json:"last_name"     validate:"required"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid4"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type passwordChangeRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// loginResponse carries the public user plus the freshly issued token pair.
// The password never appears here: PublicUser has no such field.
type loginResponse struct {
	User         *domain.PublicUser `json:"user"`
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
}

// refreshResponse is the generic body returned once the token cookies are set.
type refreshResponse struct {
	Msg string `json:"msg"`
}
