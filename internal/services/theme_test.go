package services

import (
	"context"
	"testing"

	"wastewise-admin-service/internal/domain"
	apperrors "wastewise-admin-service/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeToggle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.users.Create(ctx, &domain.User{ID: "U1", Name: "Kofi", Theme: ""}))
	svc := NewThemeService(store.users)

	got, err := svc.Get(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, got, "unset theme reads as light")

	got, err = svc.Toggle(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, got)

	got, err = svc.Toggle(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, got)

	u, err := store.users.GetByID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, u.Theme)
}

func TestThemeUnknownUser(t *testing.T) {
	svc := NewThemeService(newMemStore().users)
	_, err := svc.Toggle(context.Background(), "U404")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
