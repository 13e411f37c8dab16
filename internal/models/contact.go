package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ContactID uuid.UUID `json:"id" db:"contact_id"`
	Name      string    `json:"name" db:"name"`
	Message   string    `json:"message" db:"message"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ContactEvent notifies downstream consumers about a new contact submission.
type ContactEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}
