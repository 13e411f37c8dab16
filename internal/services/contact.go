package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// ErrEmptyFields is returned when a public form misses a required field.
var ErrEmptyFields = errors.New("empty fields")

// ContactService handles contact form submissions.
type ContactService struct {
	repo        ContactRepository
	kafkaWriter KafkaWriter
	topic       string
}

// NewContactService creates a new ContactService. kafkaWriter may be nil.
func NewContactService(repo ContactRepository, kafkaWriter KafkaWriter, topic string) *ContactService {
	return &ContactService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
		topic:       topic,
	}
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list contacts", "error", err)
		return nil, err
	}
	return contacts, nil
}

// Create stores the submission and notifies downstream consumers.
func (s *ContactService) Create(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	if req.Name == "" || req.Message == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrEmptyFields
	}

	contact, err := s.repo.Save(ctx, models.Contact{
		Name:    req.Name,
		Message: req.Message,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save contact", "error", err)
		return nil, err
	}

	event := models.ContactEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ContactID: contact.ContactID.String(),
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Message:   contact.Message,
	}
	publish(ctx, s.kafkaWriter, s.topic, event.ContactID, event)

	return contact, nil
}

// Delete removes the contact with rawID, returning nil when it did not exist.
func (s *ContactService) Delete(ctx context.Context, rawID string) (*models.Contact, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}

	contact, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete contact", "contact_id", id, "error", err)
		return nil, err
	}
	return contact, nil
}
