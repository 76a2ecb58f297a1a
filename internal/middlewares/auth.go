package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nawi-studio/nawi-backend/internal/jwt"
	"github.com/nawi-studio/nawi-backend/internal/logger"
)

// Tokener defines the minimal token operations the gates need.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString, wantType string) (*jwt.Claims, error)
}

type claimsKeyType struct{}

var claimsKey = claimsKeyType{}

// AuthMiddleware requires a valid, non-expired access token. On
// success the verified claims are stored in the request context for
// downstream handlers; no store lookup re-verifies them.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString, jwt.TokenTypeAccess)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaims(ctx, claims)))
		})
	}
}

// AdminMiddleware requires the is_admin claim. It must run after
// AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			writeAuthError(w, http.StatusUnauthorized, "Authorization required")
			return
		}
		if !claims.IsAdmin {
			logger.Log.Infow("admin access denied", "user_id", claims.UserID)
			writeAuthError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetClaims stores verified claims in the context.
func SetClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by AuthMiddleware, or
// nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

func writeAuthError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
