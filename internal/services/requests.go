package services

import (
	"context"

	"github.com/nawi-studio/nawi-backend/internal/models"
)

// DesignRequestReader lists design requests.
type DesignRequestReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.DesignRequestDB, error)
	ListAll(ctx context.Context) ([]models.DesignRequestDB, error)
}

// DesignRequestWriter creates and updates design requests.
type DesignRequestWriter interface {
	Save(ctx context.Context, req *models.DesignRequestDB) (int64, error)
	Update(ctx context.Context, id int64, status, notes *string) (int64, error)
}

// RequestNotifier queues the confirmation email for a new request.
// Queueing never blocks and delivery failures never reach the caller.
type RequestNotifier interface {
	QueueRequestConfirmation(name, email, serviceType string)
}

// RequestService handles design request submission and admin triage.
type RequestService struct {
	reader   DesignRequestReader
	writer   DesignRequestWriter
	notifier RequestNotifier
}

func NewRequestService(reader DesignRequestReader, writer DesignRequestWriter, notifier RequestNotifier) *RequestService {
	return &RequestService{
		reader:   reader,
		writer:   writer,
		notifier: notifier,
	}
}

// Submit persists a new request and queues the confirmation email.
// The request is stored even if the notification can never be sent.
func (svc *RequestService) Submit(ctx context.Context, req *models.DesignRequestDB) (int64, error) {
	id, err := svc.writer.Save(ctx, req)
	if err != nil {
		return 0, err
	}

	svc.notifier.QueueRequestConfirmation(req.Name, req.Email, req.ServiceType)
	return id, nil
}

// ListMine returns the requests submitted by one user.
func (svc *RequestService) ListMine(ctx context.Context, userID int64) ([]models.DesignRequestDB, error) {
	return svc.reader.ListByUserID(ctx, userID)
}

// ListAll returns every request for the admin view.
func (svc *RequestService) ListAll(ctx context.Context) ([]models.DesignRequestDB, error) {
	return svc.reader.ListAll(ctx)
}

// Update sets status and/or notes on a request. Nil fields are left
// untouched. Returns ErrNotFound for an unknown id.
func (svc *RequestService) Update(ctx context.Context, id int64, status, notes *string) error {
	rows, err := svc.writer.Update(ctx, id, status, notes)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
