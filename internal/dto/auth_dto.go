package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	LanguagePref string `json:"languagePref" validate:"omitempty,oneof=english arabic"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	Id           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LanguagePref string    `json:"languagePref"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UpdateLanguageRequest struct {
	LanguagePref string `json:"languagePref" validate:"required,oneof=english arabic"`
}

type ValidateTokenResponse struct {
	Valid  bool      `json:"valid"`
	UserId uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
