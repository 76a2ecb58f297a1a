package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// ContactSubmitter defines the interface the contact handler consumes.
type ContactSubmitter interface {
	Submit(ctx context.Context, m *models.ContactMessageDB) (int64, error)
}

// ContactRequest represents the JSON body of the public contact form
// swagger:model ContactRequest
type ContactRequest struct {
	// Name
	// required: true
	Name string `json:"name"`

	// Email
	// required: true
	Email string `json:"email"`

	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`

	// Message
	// required: true
	Message string `json:"message"`
}

// ContactResponse acknowledges a stored contact message
// swagger:model ContactResponse
type ContactResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// NewContactHandler returns the public contact form handler. The
// message is persisted first; the admin notification is queued after
// and can never fail the request.
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param contactRequest body handlers.ContactRequest true "Contact form fields"
// @Success 200 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing name, email, or message"
// @Router /api/contact [post]
func NewContactHandler(svc ContactSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Name == "" || req.Email == "" || req.Message == "" {
			writeError(w, http.StatusBadRequest, "Name, email, and message are required")
			return
		}

		_, err := svc.Submit(r.Context(), &models.ContactMessageDB{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			logger.Log.Errorw("contact submission failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		writeJSON(w, http.StatusOK, ContactResponse{
			Message: "Thank you for your message. We will get back to you soon!",
			Success: true,
		})
	}
}
