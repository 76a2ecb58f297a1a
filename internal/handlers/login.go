package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message      string          `json:"message"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         models.UserInfo `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password and return a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token pair returned"
// @Failure 400 {object} handlers.ErrorResponse "Missing email or password"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password required")
			return
		}

		pair, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:      "Login successful",
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         pair.User,
		})
	}
}
