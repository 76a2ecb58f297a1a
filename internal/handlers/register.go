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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password string) (*models.TokenPair, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Registration successful
	Message      string          `json:"message"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         models.UserInfo `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account with a unique email and username and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing field or duplicate email/username"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		switch {
		case req.Email == "":
			writeError(w, http.StatusBadRequest, "email is required")
			return
		case req.Username == "":
			writeError(w, http.StatusBadRequest, "username is required")
			return
		case req.Password == "":
			writeError(w, http.StatusBadRequest, "password is required")
			return
		}

		pair, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "Email already registered")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusBadRequest, "Username already taken")
			default:
				logger.Log.Errorw("registration failed", "err", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message:      "Registration successful",
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         pair.User,
		})
	}
}
