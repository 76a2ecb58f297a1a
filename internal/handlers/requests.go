package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nawi-studio/nawi-backend/internal/jwt"
	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/middlewares"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// RequestSubmitter defines the submit interface the handler consumes.
type RequestSubmitter interface {
	Submit(ctx context.Context, req *models.DesignRequestDB) (int64, error)
}

// MyRequestsLister defines the per-user listing interface.
type MyRequestsLister interface {
	ListMine(ctx context.Context, userID int64) ([]models.DesignRequestDB, error)
}

// OptionalTokener reads a bearer token when one is present so an
// authenticated submission can be linked to its user.
type OptionalTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString, wantType string) (*jwt.Claims, error)
}

// CreateRequestRequest represents the JSON body of the public design
// request form
// swagger:model CreateRequestRequest
type CreateRequestRequest struct {
	// Name
	// required: true
	Name string `json:"name"`

	// Email
	// required: true
	Email string `json:"email"`

	Phone   *string `json:"phone"`
	Company *string `json:"company"`

	// ServiceType
	// required: true
	ServiceType string `json:"service_type"`

	// ProjectDescription
	// required: true
	ProjectDescription string `json:"project_description"`

	BudgetRange *string `json:"budget_range"`
	Deadline    *string `json:"deadline"` // ISO date
}

// CreateRequestResponse acknowledges a stored design request
// swagger:model CreateRequestResponse
type CreateRequestResponse struct {
	Message   string `json:"message"`
	RequestID int64  `json:"request_id"`
}

// NewCreateRequestHandler returns the public design request handler.
// A valid access token on the request links the submission to the
// caller; an absent or invalid token leaves it anonymous.
// @Summary Submit a design request
// @Tags requests
// @Accept json
// @Produce json
// @Param createRequestRequest body handlers.CreateRequestRequest true "Design request fields"
// @Success 201 {object} handlers.CreateRequestResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing required field"
// @Router /api/requests [post]
func NewCreateRequestHandler(svc RequestSubmitter, tokens OptionalTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		switch {
		case req.Name == "":
			writeError(w, http.StatusBadRequest, "name is required")
			return
		case req.Email == "":
			writeError(w, http.StatusBadRequest, "email is required")
			return
		case req.ServiceType == "":
			writeError(w, http.StatusBadRequest, "service_type is required")
			return
		case req.ProjectDescription == "":
			writeError(w, http.StatusBadRequest, "project_description is required")
			return
		}

		var deadline *time.Time
		if req.Deadline != nil && *req.Deadline != "" {
			d, err := parseISODate(*req.Deadline)
			if err != nil {
				writeError(w, http.StatusBadRequest, "deadline must be an ISO date")
				return
			}
			deadline = &d
		}

		var userID *int64
		if tokenString, err := tokens.GetTokenFromRequest(ctx, r); err == nil {
			if claims, err := tokens.GetClaims(ctx, tokenString, jwt.TokenTypeAccess); err == nil {
				userID = &claims.UserID
			}
		}

		id, err := svc.Submit(ctx, &models.DesignRequestDB{
			Name:               req.Name,
			Email:              req.Email,
			Phone:              req.Phone,
			Company:            req.Company,
			ServiceType:        req.ServiceType,
			ProjectDescription: req.ProjectDescription,
			BudgetRange:        req.BudgetRange,
			Deadline:           deadline,
			UserID:             userID,
		})
		if err != nil {
			logger.Log.Errorw("design request submission failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		writeJSON(w, http.StatusCreated, CreateRequestResponse{
			Message:   "Your design request has been submitted successfully!",
			RequestID: id,
		})
	}
}

// MyRequestResponse is the submitter's view of their design request
// swagger:model MyRequestResponse
type MyRequestResponse struct {
	ID                 int64   `json:"id"`
	ServiceType        string  `json:"service_type"`
	ProjectDescription string  `json:"project_description"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at"`
	Deadline           *string `json:"deadline"`
}

// NewMyRequestsHandler lists the authenticated caller's own requests.
// @Summary List my design requests
// @Tags requests
// @Produce json
// @Success 200 {array} handlers.MyRequestResponse
// @Failure 401 {object} handlers.ErrorResponse "Authorization required"
// @Router /api/requests [get]
// @Security BearerAuth
func NewMyRequestsHandler(svc MyRequestsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		requests, err := svc.ListMine(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("design request listing failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		resp := make([]MyRequestResponse, 0, len(requests))
		for _, req := range requests {
			resp = append(resp, MyRequestResponse{
				ID:                 req.ID,
				ServiceType:        req.ServiceType,
				ProjectDescription: req.ProjectDescription,
				Status:             req.Status,
				CreatedAt:          req.CreatedAt.Format(time.RFC3339),
				Deadline:           formatDate(req.Deadline),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
