package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawi-studio/nawi-backend/internal/models"
)

func TestContactMessageReadRepository_ListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageReadRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "subject", "message", "is_read", "is_replied", "created_at",
	}).
		AddRow(2, "Bob", "bob@example.com", nil, "Quote", "how much for a logo?", false, false, time.Now()).
		AddRow(1, "Alice", "alice@example.com", nil, nil, "hello", true, false, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contact_messages`)).
		WillReturnRows(rows)

	messages, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	require.Len(t, messages, 2)
	assert.False(t, messages[0].IsRead)
	assert.True(t, messages[1].IsRead)
}

func TestContactMessageWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageWriteRepository(db)

	subject := "Quote"
	msg := &models.ContactMessageDB{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: &subject,
		Message: "how much for a logo?",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contact_messages`)).
		WithArgs(msg.Name, msg.Email, nil, subject, msg.Message).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Save(context.Background(), msg)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMessageWriteRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.MarkRead(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestContactMessageWriteRepository_MarkRead_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`)).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.MarkRead(context.Background(), 999)
	assert.NoError(t, err)
	assert.Zero(t, rows)
}
