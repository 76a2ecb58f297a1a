package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nawi-studio/nawi-backend/internal/jwt"
	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("successful registration", func(t *testing.T) {
		saved := &models.UserDB{ID: 1, Email: "alice@example.com", Username: "alice"}

		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), "alice@example.com", "alice", gomock.Any(), false).
			DoAndReturn(func(_ context.Context, _, _, passwordHash string, _ bool) (*models.UserDB, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123")))
				return saved, nil
			})
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), jwt.Claims{UserID: 1, Email: "alice@example.com"}).
			Return("access", "refresh", nil)

		pair, err := svc.Register(context.Background(), "alice@example.com", "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "access", pair.AccessToken)
		assert.Equal(t, "refresh", pair.RefreshToken)
		assert.Equal(t, "alice", pair.User.Username)
		assert.False(t, pair.User.IsAdmin)
	})

	t.Run("email taken", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "bob@example.com").
			Return(&models.UserDB{ID: 2}, nil)

		pair, err := svc.Register(context.Background(), "bob@example.com", "bob", "pass")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
		assert.Nil(t, pair)
	})

	t.Run("username taken", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(nil, nil)
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "carol").
			Return(&models.UserDB{ID: 3}, nil)

		pair, err := svc.Register(context.Background(), "carol@example.com", "carol", "pass")
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
		assert.Nil(t, pair)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "eve@example.com").
			Return(nil, errors.New("db error"))

		pair, err := svc.Register(context.Background(), "eve@example.com", "eve", "pass")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, pair)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.UserDB{
		ID:           1,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	t.Run("successful login", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), jwt.Claims{UserID: 1, Email: "alice@example.com", IsAdmin: true}).
			Return("access", "refresh", nil)

		pair, err := svc.Login(context.Background(), "alice@example.com", "secret123")
		require.NoError(t, err)
		assert.True(t, pair.User.IsAdmin)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		pair, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, pair)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		pair, err := svc.Login(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, pair)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "refresh-token", jwt.TokenTypeRefresh).
			Return(&jwt.Claims{UserID: 1, Email: "alice@example.com"}, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Email: "alice@example.com", Username: "alice"}, nil)
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), jwt.Claims{UserID: 1, Email: "alice@example.com"}).
			Return("new-access", "new-refresh", nil)

		pair, err := svc.Refresh(context.Background(), "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "new-access", pair.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "garbage", jwt.TokenTypeRefresh).
			Return(nil, jwt.ErrInvalidToken)

		pair, err := svc.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, services.ErrInvalidRefreshToken)
		assert.Nil(t, pair)
	})

	t.Run("user vanished", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "refresh-token", jwt.TokenTypeRefresh).
			Return(&jwt.Claims{UserID: 404}, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		pair, err := svc.Refresh(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, services.ErrInvalidRefreshToken)
		assert.Nil(t, pair)
	})
}
