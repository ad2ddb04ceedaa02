package services

import (
	"context"
	"fmt"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/ports"
)

// ThemeService persists each admin's light/dark preference.
type ThemeService struct {
	users ports.UserRepository
}

func NewThemeService(users ports.UserRepository) *ThemeService {
	return &ThemeService{users: users}
}

func (s *ThemeService) Get(ctx context.Context, userID string) (domain.Theme, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", repoError(err, "user", userID)
	}
	if !u.Theme.IsValid() {
		return domain.ThemeLight, nil
	}
	return u.Theme, nil
}

func (s *ThemeService) Toggle(ctx context.Context, userID string) (domain.Theme, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.users.UpdateTheme(ctx, userID, next); err != nil {
		return "", fmt.Errorf("toggle theme: %w", repoError(err, "user", userID))
	}
	return next, nil
}
