package follow

import (
	"net/http"
	"strconv"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service      *Service
	defaultLimit int
	maxLimit     int
}

func NewHandler(service *Service, defaultLimit, maxLimit int) *Handler {
	return &Handler{service: service, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Subscribe godoc
// @Summary Subscribe to an author
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "max recipes per author"
// @Success 201 {object} AuthorView
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	followerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	authorID, ok := authorParam(c)
	if !ok {
		return
	}
	limit, ok := recipesLimit(c)
	if !ok {
		return
	}

	view, err := h.service.Follow(c.Request.Context(), followerID, authorID, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	followerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	authorID, ok := authorParam(c)
	if !ok {
		return
	}
	if err := h.service.Unfollow(c.Request.Context(), followerID, authorID); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	followerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	limit, ok := recipesLimit(c)
	if !ok {
		return
	}
	p := pagination.FromQuery(c, h.defaultLimit, h.maxLimit)

	page, err := h.service.Subscriptions(c.Request.Context(), followerID, p, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func authorParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}

func recipesLimit(c *gin.Context) (int, bool) {
	v := c.Query("recipes_limit")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		response.FromError(c, ErrInvalidLimit)
		return 0, false
	}
	return n, true
}
