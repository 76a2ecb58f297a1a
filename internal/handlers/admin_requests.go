package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

// AdminRequestsLister defines the full listing interface for admins.
type AdminRequestsLister interface {
	ListAll(ctx context.Context) ([]models.DesignRequestDB, error)
}

// RequestUpdater defines the triage interface for admins.
type RequestUpdater interface {
	Update(ctx context.Context, id int64, status, notes *string) error
}

// AdminRequestResponse is the admin view of a design request
// swagger:model AdminRequestResponse
type AdminRequestResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	Company            *string `json:"company"`
	ServiceType        string  `json:"service_type"`
	ProjectDescription string  `json:"project_description"`
	BudgetRange        *string `json:"budget_range"`
	Deadline           *string `json:"deadline"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes"`
	CreatedAt          string  `json:"created_at"`
}

// NewAdminListRequestsHandler lists every design request, newest first.
// @Summary List all design requests
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.AdminRequestResponse
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /api/admin/requests [get]
// @Security BearerAuth
func NewAdminListRequestsHandler(svc AdminRequestsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("admin request listing failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		resp := make([]AdminRequestResponse, 0, len(requests))
		for _, req := range requests {
			resp = append(resp, AdminRequestResponse{
				ID:                 req.ID,
				Name:               req.Name,
				Email:              req.Email,
				Phone:              req.Phone,
				Company:            req.Company,
				ServiceType:        req.ServiceType,
				ProjectDescription: req.ProjectDescription,
				BudgetRange:        req.BudgetRange,
				Deadline:           formatDate(req.Deadline),
				Status:             req.Status,
				Notes:              req.Notes,
				CreatedAt:          req.CreatedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// UpdateRequestRequest represents the JSON body of a triage update.
// Absent fields keep their current value; status stays free-form.
// swagger:model UpdateRequestRequest
type UpdateRequestRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// UpdateRequestResponse acknowledges a triage update
// swagger:model UpdateRequestResponse
type UpdateRequestResponse struct {
	Message string `json:"message"`
}

// NewUpdateRequestHandler updates status/notes on a design request.
// @Summary Update a design request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Request id"
// @Param updateRequestRequest body handlers.UpdateRequestRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateRequestResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown request id"
// @Router /api/admin/requests/{id} [patch]
// @Security BearerAuth
func NewUpdateRequestHandler(svc RequestUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		var req UpdateRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Update(r.Context(), id, req.Status, req.Notes); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Request not found")
			default:
				logger.Log.Errorw("design request update failed", "err", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateRequestResponse{Message: "Request updated successfully"})
	}
}
