package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// UserCacheRepository keeps user profiles in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewUserCacheRepository creates a new repository instance with optional TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// Get returns the cached profile, or nil, nil on a miss.
func (r *UserCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.FromContext(ctx).Infow("user cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}
	// PasswordHash is not serialised, so cached profiles never carry it.
	return &user, nil
}

// Set stores the profile with the configured expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userCacheKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.FromContext(ctx).Infow("user cache set",
		"key", key,
		"result", "ok",
		"error", err,
	)
	return err
}

// Delete evicts the profile. Deleting a missing key is not an error.
func (r *UserCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := userCacheKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow("user cache delete",
		"key", key,
		"result", "deleted",
		"error", err,
	)
	return err
}
