package service_test

import (
	"context"
	"testing"
	"time"

	"coachdata/internal/service"
	"coachdata/internal/storage"
	"coachdata/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	users := store.NewUserStore(storage.NewMemoryKV())
	return service.NewAuthService(users, "test-secret", time.Hour)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Coach", "coach@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash, "hash never leaves the service")

	token, loggedIn, err := auth.Login(ctx, "coach@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestAuth_DuplicateEmail(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Coach", "coach@example.com", "hunter22")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Other", "coach@example.com", "different")
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestAuth_WrongPassword(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Coach", "coach@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "coach@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, _, err = auth.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}
