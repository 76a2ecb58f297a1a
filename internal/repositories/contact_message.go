package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// ContactMessageReadRepository lists contact messages.
type ContactMessageReadRepository struct {
	db *sqlx.DB
}

func NewContactMessageReadRepository(db *sqlx.DB) *ContactMessageReadRepository {
	return &ContactMessageReadRepository{db: db}
}

// ListAll returns every message, newest first.
func (r *ContactMessageReadRepository) ListAll(ctx context.Context) ([]models.ContactMessageDB, error) {
	const query = `
		SELECT id, name, email, phone, subject, message, is_read, is_replied, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	messages := []models.ContactMessageDB{}
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		logger.Log.Errorw("contact message list failed", "err", err)
		return nil, err
	}
	return messages, nil
}

// ContactMessageWriteRepository creates and flags contact messages.
type ContactMessageWriteRepository struct {
	db *sqlx.DB
}

func NewContactMessageWriteRepository(db *sqlx.DB) *ContactMessageWriteRepository {
	return &ContactMessageWriteRepository{db: db}
}

// Save inserts a message and returns its id.
func (r *ContactMessageWriteRepository) Save(ctx context.Context, m *models.ContactMessageDB) (int64, error) {
	const query = `
		INSERT INTO contact_messages (name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, m.Name, m.Email, m.Phone, m.Subject, m.Message)
	if err != nil {
		logger.Log.Errorw("contact message insert failed", "err", err)
		return 0, err
	}
	return id, nil
}

// MarkRead sets is_read on a message. Safe to call repeatedly.
// Returns the number of rows matched.
func (r *ContactMessageWriteRepository) MarkRead(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Log.Errorw("contact message mark read failed", "err", err)
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
