package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts user and token endpoints. auth rejects anonymous
// callers; optionalAuth only identifies them.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth, optionalAuth gin.HandlerFunc) {
	r.POST("/auth/token/login", h.Login)

	users := r.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", optionalAuth, h.List)
		users.GET("/me", auth, h.Me)
		users.POST("/set_password", auth, h.SetPassword)
		users.GET("/:id", optionalAuth, h.Get)
	}
}
