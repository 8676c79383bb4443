package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "repair-tracking/pkg/errors"
)

// TokenCacheRepositoryInterface stores the currently valid refresh token per
// user. A refresh token not present here has been rotated out or revoked.
type TokenCacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type RedisTokenCacheRepository struct {
	client *redis.Client
}

func NewRedisTokenCacheRepository(client *redis.Client) TokenCacheRepositoryInterface {
	return &RedisTokenCacheRepository{client: client}
}

func (r *RedisTokenCacheRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrTokenNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *RedisTokenCacheRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisTokenCacheRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
