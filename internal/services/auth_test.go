package services

import (
	"context"
	"testing"

	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/domain"
	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/platform/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastArgon = security.ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

type authFixture struct {
	svc      *AuthService
	store    *memStore
	sessions *memSessions
	consoles *memConsoles
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	hash, err := security.HashPasswordWith("correct horse", fastArgon)
	require.NoError(t, err)

	store := newMemStore()
	require.NoError(t, store.users.Create(context.Background(), &domain.User{
		ID:           "U1",
		Name:         "Kofi Mensah",
		Email:        "admin@wastewise.test",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		Theme:        domain.ThemeLight,
	}))

	f := authFixture{store: store, sessions: &memSessions{}, consoles: &memConsoles{}}
	f.svc = NewAuthService(store.users, f.sessions, f.consoles, config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "wastewise",
		ExpirationMinutes: 15,
		SessionTTLMinutes: 60,
	}, nil)
	return f
}

func TestLoginOpensSession(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	res, err := f.svc.Login(ctx, "  Admin@WasteWise.test ", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "KM", res.Profile.Initials)
	assert.Equal(t, domain.RoleAdmin, res.Profile.Role)

	claims, err := f.svc.Authenticate(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "U1", claims.UserID)

	ok, _ := f.sessions.HasSession(ctx, claims.ID)
	assert.True(t, ok)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	cases := map[string][2]string{
		"wrong password": {"admin@wastewise.test", "nope"},
		"unknown email":  {"ghost@wastewise.test", "correct horse"},
		"empty":          {"", ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Login(context.Background(), c[0], c[1])
			assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized), "got %v", err)
		})
	}
}

func TestLogoutRevokesSessionAndConsole(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	res, err := f.svc.Login(ctx, "admin@wastewise.test", "correct horse")
	require.NoError(t, err)
	claims, err := f.svc.Authenticate(ctx, res.AccessToken)
	require.NoError(t, err)

	state := domain.NewConsoleState()
	state.Navigate(domain.ViewZoneManagement)
	require.NoError(t, f.consoles.Save(ctx, claims.ID, state))

	require.NoError(t, f.svc.Logout(ctx, claims.ID))

	_, err = f.svc.Authenticate(ctx, res.AccessToken)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))

	loaded, err := f.consoles.Load(ctx, claims.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewAdminDashboard, loaded.View)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Authenticate(context.Background(), "not-a-jwt")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	p, err := f.svc.Me(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "admin@wastewise.test", p.Email)
	assert.Equal(t, domain.ThemeLight, p.Theme)

	_, err = f.svc.Me(ctx, "U404")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}
