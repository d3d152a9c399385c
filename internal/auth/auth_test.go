package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		hash1, _ := HashPassword("samePassword")
		hash2, _ := HashPassword("samePassword")

		// salted
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	hashed, _ := HashPassword("correctPassword")

	assert.True(t, CheckPassword(hashed, "correctPassword"))
	assert.False(t, CheckPassword(hashed, "wrongPassword"))
	assert.False(t, CheckPassword(hashed, ""))
	assert.False(t, CheckPassword("not-a-hash", "correctPassword"))
}

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := GenerateAccessToken("admin", RoleAdmin, testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
		assert.Equal(t, jwtIssuer, claims.Issuer)
		assert.Contains(t, claims.Audience, jwtAudience)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateAccessToken("admin", RoleAdmin, "")

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Expires after access TTL", func(t *testing.T) {
		token, err := GenerateAccessToken("admin", RoleAdmin, testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		diff := claims.ExpiresAt.Time.Sub(time.Now().Add(AccessTokenTTL)).Abs()
		assert.Less(t, diff, 2*time.Second)
	})
}

func TestGenerateTokens(t *testing.T) {
	t.Run("Successfully generate both tokens", func(t *testing.T) {
		access, refresh, err := GenerateTokens("admin", RoleAdmin, "access-secret", "refresh-secret")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NotEqual(t, access, refresh)

		claims, err := ValidateToken(refresh, "refresh-secret")
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
		diff := claims.ExpiresAt.Time.Sub(time.Now().Add(RefreshTokenTTL)).Abs()
		assert.Less(t, diff, 2*time.Second)
	})

	t.Run("Fail with empty refresh secret", func(t *testing.T) {
		access, refresh, err := GenerateTokens("admin", RoleAdmin, "access-secret", "")

		assert.Error(t, err)
		assert.Empty(t, access)
		assert.Empty(t, refresh)
	})
}

func expiredToken(t *testing.T, tokenType, secret string) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	claims := &JWTClaims{
		Role:      RoleAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-AccessTokenTTL)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestValidateToken(t *testing.T) {
	token, err := GenerateAccessToken("admin", RoleAdmin, testSecret)
	require.NoError(t, err)

	t.Run("Fail with empty secret", func(t *testing.T) {
		claims, err := ValidateToken(token, "")
		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with wrong secret", func(t *testing.T) {
		claims, err := ValidateToken(token, "wrong-secret")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with invalid token format", func(t *testing.T) {
		claims, err := ValidateToken("invalid.token.format", testSecret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with expired token", func(t *testing.T) {
		claims, err := ValidateToken(expiredToken(t, TokenTypeAccess, testSecret), testSecret)
		assert.Equal(t, ErrTokenExpired, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with foreign audience", func(t *testing.T) {
		claims := &JWTClaims{
			Role:      RoleAdmin,
			TokenType: TokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{"someone-else"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

		_, err := ValidateToken(s, testSecret)
		assert.Error(t, err)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	accessSecret := "access-secret"
	refreshSecret := "refresh-secret"

	t.Run("Successfully refresh access token", func(t *testing.T) {
		refresh, _ := GenerateRefreshToken("admin", RoleAdmin, refreshSecret)

		access, claims, err := RefreshAccessToken(refresh, refreshSecret, accessSecret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)

		accessClaims, err := ValidateToken(access, accessSecret)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeAccess, accessClaims.TokenType)
		assert.Equal(t, RoleAdmin, accessClaims.Role)
	})

	t.Run("Fail with access token instead of refresh token", func(t *testing.T) {
		access, _ := GenerateAccessToken("admin", RoleAdmin, accessSecret)

		newToken, claims, err := RefreshAccessToken(access, accessSecret, accessSecret)
		assert.Equal(t, ErrInvalidTokenType, err)
		assert.Empty(t, newToken)
		assert.Nil(t, claims)
	})

	t.Run("Fail with expired refresh token", func(t *testing.T) {
		newToken, claims, err := RefreshAccessToken(expiredToken(t, TokenTypeRefresh, refreshSecret), refreshSecret, accessSecret)
		assert.Equal(t, ErrTokenExpired, err)
		assert.Empty(t, newToken)
		assert.Nil(t, claims)
	})
}
