package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTransactionDescription is stored when no description is given.
const DefaultTransactionDescription = "Misc."

// Transaction is a single income or expense record owned by one user.
type Transaction struct {
	TransactionID uuid.UUID `json:"id" db:"transaction_id"`
	Amount        float64   `json:"amount" db:"amount"`
	Description   string    `json:"desc" db:"description"`
	IsDebit       bool      `json:"is_Debit" db:"is_debit"`
	OwnerID       uuid.UUID `json:"owner_id" db:"owner_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TransactionEvent is published to Kafka when a transaction is created or deleted.
type TransactionEvent struct {
	EventID       string  `json:"event_id"`       // Unique event identifier
	Timestamp     int64   `json:"timestamp"`      // Unix seconds
	TransactionID string  `json:"transaction_id"` // Affected transaction
	Amount        float64 `json:"amount"`
	IsDebit       bool    `json:"is_debit"`
	UserID        string  `json:"user_id"`   // Owner of the transaction
	Operation     string  `json:"operation"` // "created" or "deleted"
}
