package response

import (
	"errors"
	"net/http"

	"foodgram/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage is used when the request succeeded without changing
// state and the caller should be told why.
func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError writes the response for err. Domain errors keep their code and
// message; anything else is recorded on the context for the error logger
// and reported as a generic 500.
func FromError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	status := StatusFor(appErr.Kind)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if len(appErr.Details) > 0 {
		ErrorWithDetails(c, status, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	Error(c, status, appErr.Code, appErr.Message)
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
