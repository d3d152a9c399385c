package auth

import (
	"errors"
	"net/http"
	"strings"

	"studioslot/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	ctxSubject = "auth_subject"
	ctxRole    = "auth_role"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, api.ErrorResponse{Error: msg})
}

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abort(c, http.StatusUnauthorized, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, "Token expired")
			} else {
				abort(c, http.StatusUnauthorized, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != TokenTypeAccess {
			abort(c, http.StatusUnauthorized, "Access token required")
			return
		}

		c.Set(ctxSubject, claims.Subject)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			abort(c, http.StatusUnauthorized, "Role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			abort(c, http.StatusUnauthorized, "Invalid role type")
			return
		}

		if roleStr != requiredRole {
			abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

// Subject returns the authenticated token subject, if any.
func Subject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubject)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
