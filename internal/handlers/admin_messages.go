package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

// MessagesLister defines the inbox listing interface for admins.
type MessagesLister interface {
	ListMessages(ctx context.Context) ([]models.ContactMessageDB, error)
}

// MessageReadMarker flags a message as read.
type MessageReadMarker interface {
	MarkRead(ctx context.Context, id int64) error
}

// ContactMessageResponse is the admin view of a contact message
// swagger:model ContactMessageResponse
type ContactMessageResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Subject   *string `json:"subject"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read"`
	IsReplied bool    `json:"is_replied"`
	CreatedAt string  `json:"created_at"`
}

// NewAdminListMessagesHandler lists every contact message, newest first.
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.ContactMessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /api/admin/messages [get]
// @Security BearerAuth
func NewAdminListMessagesHandler(svc MessagesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.ListMessages(r.Context())
		if err != nil {
			logger.Log.Errorw("message listing failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		resp := make([]ContactMessageResponse, 0, len(messages))
		for _, m := range messages {
			resp = append(resp, ContactMessageResponse{
				ID:        m.ID,
				Name:      m.Name,
				Email:     m.Email,
				Phone:     m.Phone,
				Subject:   m.Subject,
				Message:   m.Message,
				IsRead:    m.IsRead,
				IsReplied: m.IsReplied,
				CreatedAt: m.CreatedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// MarkReadResponse acknowledges the read flag update
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	Message string `json:"message"`
}

// NewMarkMessageReadHandler flags a message as read. Repeated calls
// succeed and leave the flag set.
// @Summary Mark a contact message as read
// @Tags admin
// @Produce json
// @Param id path int true "Message id"
// @Success 200 {object} handlers.MarkReadResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown message id"
// @Router /api/admin/messages/{id}/read [patch]
// @Security BearerAuth
func NewMarkMessageReadHandler(svc MessageReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid message id")
			return
		}

		if err := svc.MarkRead(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Message not found")
			default:
				logger.Log.Errorw("mark message read failed", "err", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}

		writeJSON(w, http.StatusOK, MarkReadResponse{Message: "Message marked as read"})
	}
}
