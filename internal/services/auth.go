package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/nawi-studio/nawi-backend/internal/jwt"
	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// Error variables
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrNotFound            = errors.New("not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string, isAdmin bool) (*models.UserDB, error)
}

// TokenIssuer defines the token operations the auth service needs.
type TokenIssuer interface {
	GeneratePair(ctx context.Context, claims jwt.Claims) (access, refresh string, err error)
	GetClaims(ctx context.Context, tokenString, wantType string) (*jwt.Claims, error)
}

// AuthService handles registration, login, and token refresh.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a
// token pair for the new account.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (*models.TokenPair, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("registration rejected: email taken", "email", email)
		return nil, ErrEmailTaken
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("registration rejected: username taken", "username", username)
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, username, string(hashed), false)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.issuePair(ctx, user)
}

// Login authenticates a user by email and password.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login rejected: unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected: wrong password", "email", email)
		return nil, ErrInvalidCredentials
	}

	return svc.issuePair(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The
// embedded identity must still resolve to a user.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := svc.jwt.GetClaims(ctx, refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		logger.Log.Infow("refresh rejected", "err", err)
		return nil, ErrInvalidRefreshToken
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("refresh rejected: user gone", "user_id", claims.UserID)
		return nil, ErrInvalidRefreshToken
	}

	return svc.issuePair(ctx, user)
}

func (svc *AuthService) issuePair(ctx context.Context, user *models.UserDB) (*models.TokenPair, error) {
	access, refresh, err := svc.jwt.GeneratePair(ctx, jwt.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		logger.Log.Errorw("failed to generate tokens", "err", err)
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		User: models.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	}, nil
}
