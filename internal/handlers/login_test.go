package handlers

import (
	"bytes"
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

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := &models.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         models.UserInfo{ID: 1, Email: "john@example.com", Username: "john", IsAdmin: true},
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return(pair, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Login successful",
		},
		{
			name: "invalid credentials",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid email or password",
		},
		{
			name:         "missing password",
			body:         `{"email":"john@example.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Email and password required",
		},
		{
			name:         "invalid json",
			body:         `{invalid}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name: "internal error",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])

			if tt.expectedCode == http.StatusOK {
				user, ok := resp["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, true, user["is_admin"])
			}
		})
	}
}
