package membership

import (
	"net/http"
	"strconv"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes one endpoint per list operation.
type Handler struct {
	cart      *Service
	favorites *Service
}

func NewHandler(cart, favorites *Service) *Handler {
	return &Handler{cart: cart, favorites: favorites}
}

// AddToCart godoc
// @Summary Add a recipe to the shopping cart
// @Tags Shopping cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} recipe.ShortView
// @Success 200 {object} recipe.ShortView "already in the cart"
// @Router /recipes/{id}/shopping_cart [post]
func (h *Handler) AddToCart(c *gin.Context) { add(c, h.cart) }

// RemoveFromCart godoc
// @Summary Remove a recipe from the shopping cart
// @Tags Shopping cart
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id}/shopping_cart [delete]
func (h *Handler) RemoveFromCart(c *gin.Context) { remove(c, h.cart) }

func (h *Handler) AddFavorite(c *gin.Context) { add(c, h.favorites) }

func (h *Handler) RemoveFavorite(c *gin.Context) { remove(c, h.favorites) }

func add(c *gin.Context, svc *Service) {
	userID, recipeID, ok := params(c)
	if !ok {
		return
	}
	res, err := svc.Add(c.Request.Context(), userID, recipeID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !res.Created {
		response.SuccessWithMessage(c, http.StatusOK, svc.List().AlreadyPresent, res.Recipe)
		return
	}
	response.Success(c, http.StatusCreated, res.Recipe)
}

func remove(c *gin.Context, svc *Service) {
	userID, recipeID, ok := params(c)
	if !ok {
		return
	}
	if err := svc.Remove(c.Request.Context(), userID, recipeID); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func params(c *gin.Context) (userID, recipeID int64, ok bool) {
	userID, ok = middleware.MustUserID(c)
	if !ok {
		return 0, 0, false
	}
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || recipeID <= 0 {
		response.FromError(c, ErrInvalidRecipe)
		return 0, 0, false
	}
	return userID, recipeID, true
}
