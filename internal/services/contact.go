package services

import (
	"context"

	"github.com/nawi-studio/nawi-backend/internal/models"
)

// ContactMessageReader lists contact messages.
type ContactMessageReader interface {
	ListAll(ctx context.Context) ([]models.ContactMessageDB, error)
}

// ContactMessageWriter creates and flags contact messages.
type ContactMessageWriter interface {
	Save(ctx context.Context, m *models.ContactMessageDB) (int64, error)
	MarkRead(ctx context.Context, id int64) (int64, error)
}

// ContactNotifier queues the admin notification for a new message.
type ContactNotifier interface {
	QueueContactNotification(name, email string, phone, subject *string, message string)
}

// ContactService handles the public contact form and admin inbox.
type ContactService struct {
	reader   ContactMessageReader
	writer   ContactMessageWriter
	notifier ContactNotifier
}

func NewContactService(reader ContactMessageReader, writer ContactMessageWriter, notifier ContactNotifier) *ContactService {
	return &ContactService{
		reader:   reader,
		writer:   writer,
		notifier: notifier,
	}
}

// Submit persists a contact message and queues the admin notification.
// The message is stored even if the notification can never be sent.
func (svc *ContactService) Submit(ctx context.Context, m *models.ContactMessageDB) (int64, error) {
	id, err := svc.writer.Save(ctx, m)
	if err != nil {
		return 0, err
	}

	svc.notifier.QueueContactNotification(m.Name, m.Email, m.Phone, m.Subject, m.Message)
	return id, nil
}

// ListMessages returns every message for the admin inbox.
func (svc *ContactService) ListMessages(ctx context.Context) ([]models.ContactMessageDB, error) {
	return svc.reader.ListAll(ctx)
}

// MarkRead flags a message as read. Calling it again is a no-op that
// still succeeds. Returns ErrNotFound for an unknown id.
func (svc *ContactService) MarkRead(ctx context.Context, id int64) error {
	rows, err := svc.writer.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
