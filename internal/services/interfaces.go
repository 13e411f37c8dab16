package services

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserCache caches user profiles.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// TransactionReader defines read-only operations for transactions.
// A nil ownerID means no ownership filter.
type TransactionReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*models.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, amount float64, description string, isDebit bool) (*models.Transaction, error)
	DeleteByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*models.Transaction, error)
}

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	Save(ctx context.Context, c models.Contact) (*models.Contact, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
}

// KeyRepository stores password reset keys.
type KeyRepository interface {
	Save(ctx context.Context, userID uuid.UUID, hash string, expiresAt time.Time) (*models.Key, error)
	GetByHash(ctx context.Context, hash string) (*models.Key, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}
