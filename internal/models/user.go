package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a principal can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user record in the database
type User struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Display name
	Email        string    `json:"email" db:"email"`           // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`             // RoleUser or RoleAdmin
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Principal is the authenticated caller bound to a request.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the principal has unrestricted access.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
