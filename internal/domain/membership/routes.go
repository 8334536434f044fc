package membership

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	recipes := r.Group("/recipes/:id", auth)
	{
		recipes.POST("/shopping_cart", h.AddToCart)
		recipes.DELETE("/shopping_cart", h.RemoveFromCart)
		recipes.POST("/favorite", h.AddFavorite)
		recipes.DELETE("/favorite", h.RemoveFavorite)
	}
}
