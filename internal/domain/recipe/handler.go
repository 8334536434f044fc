package recipe

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

// Create godoc
// @Summary Create a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body WriteRequest true "recipe"
// @Success 201 {object} View
// @Router /recipes [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var req WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

// Update godoc
// @Summary Replace a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param body body WriteRequest true "recipe"
// @Success 200 {object} View
// @Router /recipes/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}
	var req WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Delete(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	view, err := h.service.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// List godoc
// @Summary List recipes
// @Tags Recipes
// @Produce json
// @Param author query int false "author id"
// @Param tags query []string false "tag slugs" collectionFormat(multi)
// @Param is_favorited query int false "1 to show only favorites"
// @Param is_in_shopping_cart query int false "1 to show only the cart"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Router /recipes [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if v := c.Query("author"); v != "" {
		author, err := strconv.ParseInt(v, 10, 64)
		if err != nil || author <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_AUTHOR", "author must be a user id")
			return
		}
		q.AuthorID = author
	}
	q.TagSlugs = c.QueryArray("tags")
	q.Favorited = isTruthy(c.Query("is_favorited"))
	q.InCart = isTruthy(c.Query("is_in_shopping_cart"))

	p := pagination.FromQuery(c, h.defaultLimit, h.maxLimit)
	page, err := h.service.List(c.Request.Context(), middleware.UserID(c), q, p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return id, true
}

func isTruthy(v string) bool {
	return v == "1" || v == "true"
}
