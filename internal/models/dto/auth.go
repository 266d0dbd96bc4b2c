package dto

import "github.com/hongminglow/catalog-be/internal/models"

type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	User    models.Identity `json:"user"`
}

// SessionResponse is returned by the session check; User is null when the
// caller is not authenticated.
type SessionResponse struct {
	User *models.Identity `json:"user"`
}
