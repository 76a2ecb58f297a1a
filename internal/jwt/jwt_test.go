package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute, time.Hour)
	ctx := context.Background()

	in := Claims{UserID: 42, Email: "admin@example.com", IsAdmin: true}

	access, refresh, err := j.GeneratePair(ctx, in)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := j.GetClaims(ctx, access, TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)

	claims, err = j.GetClaims(ctx, refresh, TokenTypeRefresh)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestJWT_WrongTokenType(t *testing.T) {
	j := New("test-secret", time.Minute, time.Hour)
	ctx := context.Background()

	refresh, err := j.Generate(ctx, Claims{UserID: 1}, TokenTypeRefresh)
	assert.NoError(t, err)

	// Refresh token must not pass as an access token and vice versa.
	_, err = j.GetClaims(ctx, refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenUse)

	access, err := j.Generate(ctx, Claims{UserID: 1}, TokenTypeAccess)
	assert.NoError(t, err)
	_, err = j.GetClaims(ctx, access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenUse)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute, -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, Claims{UserID: 7}, TokenTypeAccess)
	assert.NoError(t, err)

	_, err = j.GetClaims(ctx, token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute, time.Hour).
		Generate(ctx, Claims{UserID: 7}, TokenTypeAccess)
	assert.NoError(t, err)

	_, err = New("secret-b", time.Minute, time.Hour).
		GetClaims(ctx, token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
