package recipe

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth, optionalAuth gin.HandlerFunc) {
	recipes := r.Group("/recipes")
	{
		recipes.GET("", optionalAuth, h.List)
		recipes.POST("", auth, h.Create)
		recipes.GET("/:id", optionalAuth, h.Get)
		recipes.PATCH("/:id", auth, h.Update)
		recipes.DELETE("/:id", auth, h.Delete)
	}
}
