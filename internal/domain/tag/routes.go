package tag

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, admin ...gin.HandlerFunc) {
	tags := r.Group("/tags")
	{
		tags.GET("", h.List)
		tags.GET("/:id", h.Get)
		tags.POST("", append(admin, h.Create)...)
	}
}
