package models

import (
	"time"

	"github.com/google/uuid"
)

// Key is a one-time password reset key. Only its SHA-256 digest is stored.
type Key struct {
	KeyID     uuid.UUID `json:"id" db:"key_id"`
	Hash      string    `json:"-" db:"key_hash"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// PasswordResetEvent carries a freshly issued reset key to the mailer.
type PasswordResetEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Key       string `json:"key"`
	ExpiresAt int64  `json:"expires_at"`
}
