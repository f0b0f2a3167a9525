package user

import (
	"github.com/frahmantamala/inventory-management/internal"
)

// UserResponse is the API shape of a user, password excluded.
type UserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type CreateUserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserDTO carries optional fields; nil means keep the stored value.
type UpdateUserDTO struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

var validRoles = map[string]bool{
	"admin":   true,
	"student": true,
}

func (dto CreateUserDTO) Validate() error {
	if dto.Username == "" {
		return internal.NewValidationFieldError("username", "username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationFieldError("password", "password is required", internal.ErrCodeValidationFailed)
	}
	if dto.Role != "" && !validRoles[dto.Role] {
		return internal.NewValidationFieldError("role", "role must be admin or student", internal.ErrCodeInvalidRole)
	}
	return nil
}

func (dto UpdateUserDTO) Validate() error {
	if dto.Username != nil && *dto.Username == "" {
		return internal.NewValidationFieldError("username", "username cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Password != nil && *dto.Password == "" {
		return internal.NewValidationFieldError("password", "password cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Role != nil && !validRoles[*dto.Role] {
		return internal.NewValidationFieldError("role", "role must be admin or student", internal.ErrCodeInvalidRole)
	}
	return nil
}
