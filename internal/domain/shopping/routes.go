package shopping

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	r.GET("/recipes/download_shopping_cart", auth, h.Download)
}
