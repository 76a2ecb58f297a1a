package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// RefreshTokenExtractor extracts the bearer token carrying the refresh
// credential.
type RefreshTokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// RefreshResponse represents a successful token refresh
// swagger:model RefreshResponse
type RefreshResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         models.UserInfo `json:"user"`
}

// NewRefreshHandler returns an HTTP handler that exchanges a refresh
// token (sent as the bearer credential) for a new token pair.
// @Summary Refresh tokens
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.RefreshResponse "New token pair"
// @Failure 401 {object} handlers.ErrorResponse "Missing, invalid, or expired refresh token"
// @Router /api/auth/refresh [post]
// @Security BearerAuth
func NewRefreshHandler(svc Refresher, tokens RefreshTokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, err := tokens.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Refresh token required")
			return
		}

		pair, err := svc.Refresh(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRefreshToken):
				writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			default:
				logger.Log.Errorw("token refresh failed", "err", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}

		writeJSON(w, http.StatusOK, RefreshResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         pair.User,
		})
	}
}
