package models

import "recipe-be/internal/entities"

// UserResponse holds the public fields of an account
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse is returned after successful authentication
type TokenResponse struct {
	Token string `json:"token"`
}

func NewUserResponse(u *entities.User) *UserResponse {
	return &UserResponse{Email: u.Email, Name: u.Name}
}
