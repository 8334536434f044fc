package ingredient

import (
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List ingredients
// @Tags Ingredients
// @Produce json
// @Param name query string false "name prefix"
// @Success 200 {array} Ingredient
// @Router /ingredients [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if items == nil {
		items = []Ingredient{}
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return
	}
	ing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ing)
}
