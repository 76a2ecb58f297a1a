package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := &models.TokenPair{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		User:         models.UserInfo{ID: 1, Email: "john@example.com", Username: "john"},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockRefresher(ctrl)
		mockTokens := NewMockRefreshTokenExtractor(ctrl)

		mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("refresh-token", nil)
		mockSvc.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(pair, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		rr := httptest.NewRecorder()
		NewRefreshHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp RefreshResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "new-access", resp.AccessToken)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("missing token", func(t *testing.T) {
		mockSvc := NewMockRefresher(ctrl)
		mockTokens := NewMockRefreshTokenExtractor(ctrl)

		mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no header"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		rr := httptest.NewRecorder()
		NewRefreshHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Refresh token required"}`, rr.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		mockSvc := NewMockRefresher(ctrl)
		mockTokens := NewMockRefreshTokenExtractor(ctrl)

		mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("stale", nil)
		mockSvc.EXPECT().Refresh(gomock.Any(), "stale").Return(nil, services.ErrInvalidRefreshToken)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		rr := httptest.NewRecorder()
		NewRefreshHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid or expired refresh token"}`, rr.Body.String())
	})
}
