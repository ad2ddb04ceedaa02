package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/auth"
	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/security"
	"wastewise-admin-service/internal/ports"
)

var errBadCredentials = apperrors.New(apperrors.CodeUnauthorized, "invalid email or password")

// Profile is what the console header shows for the signed-in admin.
type Profile struct {
	ID       string
	Name     string
	Email    string
	Role     string
	Initials string
	Theme    domain.Theme
}

func profileOf(u *domain.User) Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Initials: u.Initials(),
		Theme:    u.Theme,
	}
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Profile     Profile
}

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	consoles ports.ConsoleStore
	jwt      config.JWTConfig
	logg     *logger.Logger
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	consoles ports.ConsoleStore,
	jwtCfg config.JWTConfig,
	logg *logger.Logger,
) *AuthService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		consoles: consoles,
		jwt:      jwtCfg,
		logg:     logg,
		now:      time.Now,
	}
}

// Login checks the password and opens a session keyed by the token's jti.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errBadCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, errBadCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, security.ErrInvalidHash) {
			s.logg.Warn(s.logg.WithUserID(ctx, user.ID), "stored password hash is unreadable")
			return nil, errBadCredentials
		}
		return nil, fmt.Errorf("login: verify password: %w", err)
	}
	if !ok {
		return nil, errBadCredentials
	}

	token, claims, err := auth.MintAccessToken(s.jwt, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("login: mint token: %w", err)
	}
	if err := s.sessions.Create(ctx, claims.ID, user.ID); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "session store unavailable")
	}

	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "admin logged in")
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
		Profile:     profileOf(user),
	}, nil
}

// Authenticate validates a bearer token and its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.AccessTokenClaims, error) {
	claims, err := auth.ParseAccessToken(s.jwt, token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnauthorized, err, "invalid access token")
	}
	ok, err := s.sessions.HasSession(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "session store unavailable")
	}
	if !ok {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "session expired or revoked")
	}
	return claims, nil
}

// Logout revokes the session and forgets its console state.
func (s *AuthService) Logout(ctx context.Context, accessID string) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "session store unavailable")
	}
	if s.consoles != nil {
		if err := s.consoles.Delete(ctx, accessID); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "err", err.Error()), "console state cleanup failed")
		}
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return Profile{}, apperrors.New(apperrors.CodeUnauthorized, "user no longer exists")
		}
		return Profile{}, fmt.Errorf("me: %w", err)
	}
	return profileOf(u), nil
}
