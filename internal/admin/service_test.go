package admin

import (
	"context"
	"testing"

	"studioslot/internal/api"
	"studioslot/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	accessSecret  = "access-secret"
	refreshSecret = "refresh-secret"
)

func TestService_Login(t *testing.T) {
	hash, err := auth.HashPassword("hashed-pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		creds    Credentials
		password string
		wantErr  error
	}{
		{"plain password", Credentials{Password: "plain-pass"}, "plain-pass", nil},
		{"plain password mismatch", Credentials{Password: "plain-pass"}, "nope", ErrInvalidCredentials},
		{"bcrypt hash", Credentials{PasswordHash: hash}, "hashed-pass", nil},
		{"hash wins over plain", Credentials{PasswordHash: hash, Password: "plain-pass"}, "plain-pass", ErrInvalidCredentials},
		{"nothing configured", Credentials{}, "", ErrLoginDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.creds.AccessSecret = accessSecret
			tt.creds.RefreshSecret = refreshSecret
			resp, err := NewService(tt.creds).Login(context.Background(), LoginRequest{Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, api.IsKind(err, api.KindUnauthorized))
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int(auth.AccessTokenTTL.Seconds()), resp.ExpiresIn)

			claims, err := auth.ValidateToken(resp.AccessToken, accessSecret)
			require.NoError(t, err)
			assert.Equal(t, Subject, claims.Subject)
			assert.Equal(t, auth.RoleAdmin, claims.Role)

			claims, err = auth.ValidateToken(resp.RefreshToken, refreshSecret)
			require.NoError(t, err)
			assert.Equal(t, auth.TokenTypeRefresh, claims.TokenType)
		})
	}
}

func TestService_Refresh(t *testing.T) {
	svc := NewService(Credentials{Password: "pw", AccessSecret: accessSecret, RefreshSecret: refreshSecret})

	login, err := svc.Login(context.Background(), LoginRequest{Password: "pw"})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		resp, err := svc.Refresh(context.Background(), RefreshRequest{RefreshToken: login.RefreshToken})
		require.NoError(t, err)
		assert.Empty(t, resp.RefreshToken)

		claims, err := auth.ValidateToken(resp.AccessToken, accessSecret)
		require.NoError(t, err)
		assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)
	})

	t.Run("access token rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), RefreshRequest{RefreshToken: login.AccessToken})
		assert.True(t, api.IsKind(err, api.KindUnauthorized))
	})

	t.Run("non-admin role rejected", func(t *testing.T) {
		token, err := auth.GenerateRefreshToken("someone", "client", refreshSecret)
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), RefreshRequest{RefreshToken: token})
		assert.True(t, api.IsKind(err, api.KindUnauthorized))
	})
}
