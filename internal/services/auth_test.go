package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/pkg/contextkeys"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/service"
	"repair-tracking/pkg/utils"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type fakeTokenCache struct {
	store map[string]string
}

func (c *fakeTokenCache) Get(ctx context.Context, key string) (string, error) {
	value, ok := c.store[key]
	if !ok {
		return "", apperrors.ErrTokenNotFound
	}
	return value, nil
}

func (c *fakeTokenCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.store[key] = value
	return nil
}

func (c *fakeTokenCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

func newAuthTestService(t *testing.T) (*AuthService, *fakeTokenCache) {
	t.Helper()

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &fakeUserRepository{users: map[string]*entities.User{
		"operator": {ID: 1, Username: "operator", PasswordHash: hash},
	}}
	cache := &fakeTokenCache{store: make(map[string]string)}
	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour)

	return NewAuthService(users, cache, jwtSvc, zap.NewNop()), cache
}

func TestLogin(t *testing.T) {
	svc, cache := newAuthTestService(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Username: "operator", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)

	// The refresh token is retained for later comparison.
	assert.Equal(t, pair.RefreshToken, cache.store["refresh_token:1"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "operator", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown user yields the same error, not a not-found leak.
	_, err = svc.Login(context.Background(), dto.LoginDTO{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, cache := newAuthTestService(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Username: "operator", Password: "correct-horse"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.Equal(t, rotated.RefreshToken, cache.store["refresh_token:1"])

	// A token that was never stored is rejected even when its signature
	// verifies.
	require.NoError(t, cache.Del(context.Background(), "refresh_token:1"))
	_, err = svc.Refresh(context.Background(), rotated.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthTestService(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Username: "operator", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestLogout(t *testing.T) {
	svc, cache := newAuthTestService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "operator", Password: "correct-horse"})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, uint64(1))
	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, cache.store)

	err = svc.Logout(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
}
