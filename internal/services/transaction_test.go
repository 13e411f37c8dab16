package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_Create(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("defaults to debit and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockTransactionWriter(ctrl)
		kw := services.NewMockKafkaWriter(ctrl)

		saved := &models.Transaction{TransactionID: uuid.New(), Amount: 12.5, Description: "Groceries", IsDebit: true, OwnerID: owner}
		writer.EXPECT().Save(ctx, owner, 12.5, "Groceries", true).Return(saved, nil)
		kw.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "transactions", msgs[0].Topic)

			var event models.TransactionEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "created", event.Operation)
			assert.Equal(t, saved.TransactionID.String(), event.TransactionID)
			assert.Equal(t, owner.String(), event.UserID)
			return nil
		})

		svc := services.NewTransactionService(nil, writer, kw, "transactions")
		tx, err := svc.Create(ctx, owner, 12.5, "Groceries", nil)
		assert.NoError(t, err)
		assert.Equal(t, saved, tx)
	})

	t.Run("credit flag honoured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockTransactionWriter(ctrl)

		credit := false
		writer.EXPECT().Save(ctx, owner, 100.0, "Salary", false).Return(&models.Transaction{OwnerID: owner}, nil)

		svc := services.NewTransactionService(nil, writer, nil, "transactions")
		_, err := svc.Create(ctx, owner, 100, "Salary", &credit)
		assert.NoError(t, err)
	})

	t.Run("validation halts before store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockTransactionWriter(ctrl)

		svc := services.NewTransactionService(nil, writer, nil, "transactions")

		_, err := svc.Create(ctx, owner, 0, "Groceries", nil)
		assert.ErrorIs(t, err, services.ErrInvalidTransaction)

		_, err = svc.Create(ctx, owner, 5, "", nil)
		assert.ErrorIs(t, err, services.ErrInvalidTransaction)
	})

	t.Run("publish failure does not fail create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockTransactionWriter(ctrl)
		kw := services.NewMockKafkaWriter(ctrl)

		writer.EXPECT().Save(ctx, owner, 1.0, "Tea", true).Return(&models.Transaction{OwnerID: owner}, nil)
		kw.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		svc := services.NewTransactionService(nil, writer, kw, "transactions")
		_, err := svc.Create(ctx, owner, 1, "Tea", nil)
		assert.NoError(t, err)
	})
}

func TestTransactionService_Get(t *testing.T) {
	ctx := context.Background()
	user := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	admin := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	id := uuid.New()

	t.Run("non-admin is owner filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockTransactionReader(ctrl)

		reader.EXPECT().GetByID(ctx, id, &user.UserID).Return(nil, nil)

		_, err := services.NewTransactionService(reader, nil, nil, "").Get(ctx, user, id.String())
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
	})

	t.Run("admin sees any record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockTransactionReader(ctrl)

		reader.EXPECT().GetByID(ctx, id, gomock.Nil()).Return(&models.Transaction{TransactionID: id}, nil)

		tx, err := services.NewTransactionService(reader, nil, nil, "").Get(ctx, admin, id.String())
		assert.NoError(t, err)
		assert.Equal(t, id, tx.TransactionID)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := services.NewTransactionService(nil, nil, nil, "").Get(ctx, user, "abc")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrTransactionNotFound)
	})
}

func TestTransactionService_Delete(t *testing.T) {
	ctx := context.Background()
	user := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	id := uuid.New()

	t.Run("missing record is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockTransactionWriter(ctrl)
		kw := services.NewMockKafkaWriter(ctrl)

		writer.EXPECT().DeleteByID(ctx, id, &user.UserID).Return(nil, nil)

		tx, err := services.NewTransactionService(nil, writer, kw, "transactions").Delete(ctx, user, id.String())
		assert.NoError(t, err)
		assert.Nil(t, tx)
	})

	t.Run("deleted record is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockTransactionWriter(ctrl)
		kw := services.NewMockKafkaWriter(ctrl)

		writer.EXPECT().DeleteByID(ctx, id, &user.UserID).Return(&models.Transaction{TransactionID: id, OwnerID: user.UserID}, nil)
		kw.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		tx, err := services.NewTransactionService(nil, writer, kw, "transactions").Delete(ctx, user, id.String())
		assert.NoError(t, err)
		assert.Equal(t, id, tx.TransactionID)
	})
}

func TestTransactionService_Lists(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	ctrl := gomock.NewController(t)
	reader := services.NewMockTransactionReader(ctrl)
	svc := services.NewTransactionService(reader, nil, nil, "")

	reader.EXPECT().ListByOwner(ctx, owner).Return([]models.Transaction{{OwnerID: owner}}, nil)
	reader.EXPECT().ListAll(ctx).Return(nil, errors.New("db error"))

	mine, err := svc.ListByOwner(ctx, owner)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.ListAll(ctx)
	assert.EqualError(t, err, "db error")
}
