package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawi-studio/nawi-backend/internal/jwt"
	"github.com/nawi-studio/nawi-backend/internal/middlewares"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

func TestCreateRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("anonymous submission", func(t *testing.T) {
		mockSvc := NewMockRequestSubmitter(ctrl)
		mockTokens := NewMockOptionalTokener(ctrl)

		mockTokens.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no header"))
		mockSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.DesignRequestDB) (int64, error) {
				assert.Nil(t, r.UserID)
				assert.Equal(t, "logo", r.ServiceType)
				return 9, nil
			})

		body := `{"name":"Alice","email":"alice@example.com","service_type":"logo","project_description":"a logo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreateRequestHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp CreateRequestResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(9), resp.RequestID)
		assert.Equal(t, "Your design request has been submitted successfully!", resp.Message)
	})

	t.Run("authenticated submission links user", func(t *testing.T) {
		mockSvc := NewMockRequestSubmitter(ctrl)
		mockTokens := NewMockOptionalTokener(ctrl)

		mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "token", jwt.TokenTypeAccess).
			Return(&jwt.Claims{UserID: 42}, nil)
		mockSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.DesignRequestDB) (int64, error) {
				require.NotNil(t, r.UserID)
				assert.Equal(t, int64(42), *r.UserID)
				return 10, nil
			})

		body := `{"name":"Alice","email":"alice@example.com","service_type":"logo","project_description":"a logo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreateRequestHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("invalid token stays anonymous", func(t *testing.T) {
		mockSvc := NewMockRequestSubmitter(ctrl)
		mockTokens := NewMockOptionalTokener(ctrl)

		mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("garbage", nil)
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "garbage", jwt.TokenTypeAccess).
			Return(nil, jwt.ErrInvalidToken)
		mockSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.DesignRequestDB) (int64, error) {
				assert.Nil(t, r.UserID)
				return 11, nil
			})

		body := `{"name":"Alice","email":"alice@example.com","service_type":"logo","project_description":"a logo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreateRequestHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing service_type", func(t *testing.T) {
		mockSvc := NewMockRequestSubmitter(ctrl)
		mockTokens := NewMockOptionalTokener(ctrl)

		body := `{"name":"Alice","email":"alice@example.com","project_description":"a logo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreateRequestHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"service_type is required"}`, rr.Body.String())
	})

	t.Run("bad deadline", func(t *testing.T) {
		mockSvc := NewMockRequestSubmitter(ctrl)
		mockTokens := NewMockOptionalTokener(ctrl)

		body := `{"name":"Alice","email":"alice@example.com","service_type":"logo","project_description":"a logo","deadline":"soon"}`
		req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreateRequestHandler(mockSvc, mockTokens)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"deadline must be an ISO date"}`, rr.Body.String())
	})
}

func TestMyRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists caller requests", func(t *testing.T) {
		mockSvc := NewMockMyRequestsLister(ctrl)

		deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.EXPECT().ListMine(gomock.Any(), int64(42)).Return([]models.DesignRequestDB{
			{
				ID:                 1,
				ServiceType:        "logo",
				ProjectDescription: "a logo",
				Status:             models.RequestStatusPending,
				CreatedAt:          time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
				Deadline:           &deadline,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
		ctx := middlewares.SetClaims(req.Context(), &jwt.Claims{UserID: 42})
		rr := httptest.NewRecorder()
		NewMyRequestsHandler(mockSvc)(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []MyRequestResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, models.RequestStatusPending, resp[0].Status)
		require.NotNil(t, resp[0].Deadline)
		assert.Equal(t, "2026-09-01", *resp[0].Deadline)
	})

	t.Run("no claims", func(t *testing.T) {
		mockSvc := NewMockMyRequestsLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
		rr := httptest.NewRecorder()
		NewMyRequestsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
