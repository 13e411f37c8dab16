package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

var (
	ErrInvalidTransaction  = errors.New("amount and description are required")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionService handles expense records and publishes their events.
type TransactionService struct {
	reader      TransactionReader
	writer      TransactionWriter
	kafkaWriter KafkaWriter
	topic       string
}

// NewTransactionService creates a new TransactionService. kafkaWriter may be nil.
func NewTransactionService(reader TransactionReader, writer TransactionWriter, kafkaWriter KafkaWriter, topic string) *TransactionService {
	return &TransactionService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		topic:       topic,
	}
}

// ownerFilter restricts non-admin principals to their own records.
func ownerFilter(p models.Principal) *uuid.UUID {
	if p.IsAdmin() {
		return nil
	}
	id := p.UserID
	return &id
}

// ListByOwner returns the records created by ownerID.
func (s *TransactionService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error) {
	txs, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list transactions", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return txs, nil
}

// ListAll returns every record.
func (s *TransactionService) ListAll(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.reader.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	return txs, nil
}

// Get returns the record with rawID visible to the principal.
func (s *TransactionService) Get(ctx context.Context, p models.Principal, rawID string) (*models.Transaction, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}

	tx, err := s.reader.GetByID(ctx, id, ownerFilter(p))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get transaction", "transaction_id", id, "error", err)
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

// Create stores a record owned by ownerID. isDebit defaults to true.
func (s *TransactionService) Create(ctx context.Context, ownerID uuid.UUID, amount float64, desc string, isDebit *bool) (*models.Transaction, error) {
	if amount == 0 || desc == "" {
		return nil, ErrInvalidTransaction
	}

	debit := true
	if isDebit != nil {
		debit = *isDebit
	}

	tx, err := s.writer.Save(ctx, ownerID, amount, desc, debit)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save transaction", "owner_id", ownerID, "amount", amount, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, tx, "created")
	return tx, nil
}

// Delete removes the record with rawID visible to the principal and returns
// it, or nil when nothing was removed.
func (s *TransactionService) Delete(ctx context.Context, p models.Principal, rawID string) (*models.Transaction, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}

	tx, err := s.writer.DeleteByID(ctx, id, ownerFilter(p))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete transaction", "transaction_id", id, "error", err)
		return nil, err
	}
	if tx != nil {
		s.publishTransaction(ctx, tx, "deleted")
	}
	return tx, nil
}

func (s *TransactionService) publishTransaction(ctx context.Context, tx *models.Transaction, operation string) {
	event := models.TransactionEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		TransactionID: tx.TransactionID.String(),
		Amount:        tx.Amount,
		IsDebit:       tx.IsDebit,
		UserID:        tx.OwnerID.String(),
		Operation:     operation,
	}
	publish(ctx, s.kafkaWriter, s.topic, event.TransactionID, event)
}
