package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// UserService serves user profiles with an optional cache in front of the store.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.reader.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Get returns the user with id, reading through the cache.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			log.Warnw("user cache read failed", "user_id", id, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			log.Warnw("failed to cache user", "user_id", id, "error", err)
		}
	}
	return user, nil
}

// Delete removes the user with rawID and returns it, or nil when it did not exist.
func (s *UserService) Delete(ctx context.Context, rawID string) (*models.User, error) {
	log := logger.FromContext(ctx)

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.writer.DeleteByID(ctx, id)
	if err != nil {
		log.Errorw("failed to delete user", "user_id", id, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			log.Warnw("failed to evict cached user", "user_id", id, "error", err)
		}
	}
	return deleted, nil
}
