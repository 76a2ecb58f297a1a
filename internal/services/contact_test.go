package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

func TestContactService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockContactMessageReader(ctrl)
	mockWriter := services.NewMockContactMessageWriter(ctrl)
	mockNotifier := services.NewMockContactNotifier(ctrl)

	svc := services.NewContactService(mockReader, mockWriter, mockNotifier)

	subject := "Quote"
	msg := &models.ContactMessageDB{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: &subject,
		Message: "how much for a logo?",
	}

	t.Run("save then notify", func(t *testing.T) {
		gomock.InOrder(
			mockWriter.EXPECT().Save(gomock.Any(), msg).Return(int64(7), nil),
			mockNotifier.EXPECT().
				QueueContactNotification("Bob", "bob@example.com", gomock.Nil(), &subject, "how much for a logo?"),
		)

		id, err := svc.Submit(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("save failure skips notification", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), msg).Return(int64(0), errors.New("insert failed"))

		id, err := svc.Submit(context.Background(), msg)
		assert.Error(t, err)
		assert.Zero(t, id)
	})
}

func TestContactService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockContactMessageReader(ctrl)
	svc := services.NewContactService(mockReader, services.NewMockContactMessageWriter(ctrl), services.NewMockContactNotifier(ctrl))

	want := []models.ContactMessageDB{{ID: 1, Name: "Alice"}}
	mockReader.EXPECT().ListAll(gomock.Any()).Return(want, nil)

	got, err := svc.ListMessages(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestContactService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockContactMessageWriter(ctrl)
	svc := services.NewContactService(services.NewMockContactMessageReader(ctrl), mockWriter, services.NewMockContactNotifier(ctrl))

	t.Run("marked", func(t *testing.T) {
		mockWriter.EXPECT().MarkRead(gomock.Any(), int64(7)).Return(int64(1), nil)

		assert.NoError(t, svc.MarkRead(context.Background(), 7))
	})

	t.Run("unknown id", func(t *testing.T) {
		mockWriter.EXPECT().MarkRead(gomock.Any(), int64(999)).Return(int64(0), nil)

		assert.ErrorIs(t, svc.MarkRead(context.Background(), 999), services.ErrNotFound)
	})
}
