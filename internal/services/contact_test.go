package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()
	req := models.ContactRequest{Name: "Ann", Message: "Hello", Email: "ann@example.com", Phone: "555-0100"}

	t.Run("stores and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := services.NewMockContactRepository(ctrl)
		kw := services.NewMockKafkaWriter(ctrl)

		saved := &models.Contact{ContactID: uuid.New(), Name: req.Name, Message: req.Message, Email: req.Email, Phone: req.Phone}
		repo.EXPECT().Save(ctx, models.Contact{Name: req.Name, Message: req.Message, Email: req.Email, Phone: req.Phone}).Return(saved, nil)
		kw.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		c, err := services.NewContactService(repo, kw, "contacts").Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, saved, c)
	})

	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := services.NewMockContactRepository(ctrl)

		noPhone := req
		noPhone.Phone = ""

		_, err := services.NewContactService(repo, nil, "contacts").Create(ctx, noPhone)
		assert.ErrorIs(t, err, services.ErrEmptyFields)
	})
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := services.NewMockContactRepository(ctrl)
	svc := services.NewContactService(repo, nil, "")

	repo.EXPECT().DeleteByID(ctx, id).Return(&models.Contact{ContactID: id}, nil)

	c, err := svc.Delete(ctx, id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, c.ContactID)

	_, err = svc.Delete(ctx, "bad-id")
	assert.Error(t, err)
}

func TestContactService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := services.NewMockContactRepository(ctrl)

	repo.EXPECT().List(gomock.Any()).Return([]models.Contact{{Name: "Ann"}}, nil)

	contacts, err := services.NewContactService(repo, nil, "").List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
}
