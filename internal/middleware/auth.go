package middleware

import (
	"errors"
	"net/http"
	"strings"

	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// JWTAuth requires a valid access token and stores user_id and role on the
// context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			c.Abort()
			return
		}

		tokenStr, ok := bearerToken(h)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired")
			} else {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth identifies the caller when a valid token is sent and lets
// anonymous requests through otherwise.
func OptionalJWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := jwtService.ValidateToken(tokenStr); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// bearerToken accepts "Bearer <jwt>" and the legacy "Token <jwt>" scheme.
func bearerToken(header string) (string, bool) {
	for _, scheme := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, scheme) {
			tok := strings.TrimSpace(strings.TrimPrefix(header, scheme))
			return tok, tok != ""
		}
	}
	return "", false
}

// UserID returns the authenticated caller, 0 for anonymous requests.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

func Role(c *gin.Context) string {
	return c.GetString(ctxRole)
}

// MustUserID returns the authenticated caller or writes a 401 and reports
// false.
func MustUserID(c *gin.Context) (int64, bool) {
	id := UserID(c)
	if id == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		c.Abort()
		return 0, false
	}
	return id, true
}
