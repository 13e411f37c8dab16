package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey is returned for unknown, expired or foreign reset keys.
var ErrInvalidKey = errors.New("invalid reset key")

// PasswordResetService issues one-time reset keys and redeems them.
type PasswordResetService struct {
	reader      UserReader
	writer      UserWriter
	keys        KeyRepository
	kafkaWriter KafkaWriter
	topic       string
	keyExp      time.Duration
	now         func() time.Time
}

// NewPasswordResetService creates a new PasswordResetService. kafkaWriter may be nil.
func NewPasswordResetService(
	reader UserReader,
	writer UserWriter,
	keys KeyRepository,
	kafkaWriter KafkaWriter,
	topic string,
	keyExp time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		reader:      reader,
		writer:      writer,
		keys:        keys,
		kafkaWriter: kafkaWriter,
		topic:       topic,
		keyExp:      keyExp,
		now:         time.Now,
	}
}

// HashKey returns the hex SHA-256 digest under which a key is stored.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Issue creates a reset key for the account with email and hands the raw key
// to the mailer through Kafka. Only the digest is stored.
func (s *PasswordResetService) Issue(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrUserNotFound
	}
	user, err := s.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "error", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	raw := uuid.NewString()
	expiresAt := s.now().Add(s.keyExp)

	if _, err := s.keys.Save(ctx, user.UserID, HashKey(raw), expiresAt); err != nil {
		log.Errorw("failed to save reset key", "user_id", user.UserID, "error", err)
		return err
	}

	event := models.PasswordResetEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		UserID:    user.UserID.String(),
		Email:     user.Email,
		Key:       raw,
		ExpiresAt: expiresAt.Unix(),
	}
	publish(ctx, s.kafkaWriter, s.topic, event.UserID, event)
	return nil
}

// Reset replaces the password of the account with email when key is a live
// key issued to that account. All keys of the account are revoked afterwards.
func (s *PasswordResetService) Reset(ctx context.Context, email, key, password string) error {
	log := logger.FromContext(ctx)

	if email == "" || key == "" || password == "" {
		return ErrEmptyFields
	}
	if err := validation.Password(password); err != nil {
		return err
	}

	stored, err := s.keys.GetByHash(ctx, HashKey(key))
	if err != nil {
		log.Errorw("failed to get reset key", "error", err)
		return err
	}
	if stored == nil || !s.now().Before(stored.ExpiresAt) {
		return ErrInvalidKey
	}

	user, err := s.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "error", err)
		return err
	}
	if user == nil || user.UserID != stored.UserID {
		return ErrInvalidKey
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		log.Errorw("failed to hash password", "error", err)
		return err
	}

	if err := s.writer.UpdatePassword(ctx, user.UserID, string(hashed)); err != nil {
		log.Errorw("failed to update password", "user_id", user.UserID, "error", err)
		return err
	}
	if err := s.keys.DeleteByUserID(ctx, user.UserID); err != nil {
		log.Errorw("failed to revoke reset keys", "user_id", user.UserID, "error", err)
		return err
	}
	return nil
}
