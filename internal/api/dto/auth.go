package dto

import (
	"time"

	"wastewise-admin-service/internal/services"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
	Theme    string `json:"theme"`
}

func Profile(p services.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Role:     p.Role,
		Initials: p.Initials,
		Theme:    string(p.Theme),
	}
}

type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	User        ProfileResponse `json:"user"`
}

func Login(res *services.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		User:        Profile(res.Profile),
	}
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
