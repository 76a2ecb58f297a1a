package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types embedded in the "typ" claim. Access tokens authorize API
// calls; refresh tokens are accepted only by the refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongTokenUse = errors.New("token type not valid for this operation")
)

// Claims carries the identity asserted by a token. Claims are trusted
// until expiry; no store lookup re-verifies them per request.
type Claims struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

// JWT signs and parses HS256 tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// New creates a new JWT instance.
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// Generate creates a signed token of the given type carrying the claims.
func (j *JWT) Generate(ctx context.Context, claims Claims, tokenType string) (string, error) {
	exp := j.AccessExp
	if tokenType == TokenTypeRefresh {
		exp = j.RefreshExp
	}

	now := time.Now()
	mapClaims := jwt.MapClaims{
		"user_id":  claims.UserID,
		"email":    claims.Email,
		"is_admin": claims.IsAdmin,
		"typ":      tokenType,
		"exp":      now.Add(exp).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(j.SecretKey))
}

// GeneratePair issues an access and a refresh token for the same identity.
func (j *JWT) GeneratePair(ctx context.Context, claims Claims) (access string, refresh string, err error) {
	access, err = j.Generate(ctx, claims, TokenTypeAccess)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.Generate(ctx, claims, TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GetClaims parses a token string, verifies the signature and expiry,
// and requires the token to be of wantType.
func (j *JWT) GetClaims(ctx context.Context, tokenString, wantType string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	typ, _ := mapClaims["typ"].(string)
	if typ != wantType {
		return nil, ErrWrongTokenUse
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{UserID: int64(userID)}
	claims.Email, _ = mapClaims["email"].(string)
	claims.IsAdmin, _ = mapClaims["is_admin"].(bool)
	return claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
