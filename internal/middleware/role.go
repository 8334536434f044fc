package middleware

import (
	"slices"

	"foodgram/internal/pkg/apperr"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const roleAdmin = "admin"

var (
	errNoRole    = apperr.Authentication("UNAUTHORIZED", "Authentication required")
	errWrongRole = apperr.Authorization("FORBIDDEN", "You do not have permission to perform this action")
)

// RequireRole lets the request through when the caller, as identified by a
// preceding JWTAuth, has one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		switch {
		case role == "":
			response.FromError(c, errNoRole)
		case !slices.Contains(roles, role):
			response.FromError(c, errWrongRole)
		default:
			c.Next()
			return
		}
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(roleAdmin)
}
