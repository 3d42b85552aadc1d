package auth

import "github.com/estantebooks/estante/pkg/models"

// RegisterPayload represents the registration request body.
type RegisterPayload struct {
	Name     string `json:"name" mod:"trim" validate:"required,max=255"`
	Email    string `json:"email" mod:"trim" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginPayload represents the login request body.
type LoginPayload struct {
	Email    string `json:"email" mod:"trim" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned from both register and login.
type SessionResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}
