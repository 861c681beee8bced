package models

// CreateUserRequest represents the request body for account signup
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Name     string `json:"name" validate:"max=255"`
}

// TokenRequest represents the request body for token issuance
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a profile update. Absent fields are left
// untouched on PATCH; PUT requires email and password.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=128"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
}
