package membership

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupDB(t)
	rec := createRecipe(t, db, "Olivier")
	h := NewHandler(newService(db, Cart), newService(db, Favorites))

	r := gin.New()
	auth := func(c *gin.Context) {
		if c.GetHeader("X-Test-User-ID") != "" {
			c.Set("user_id", user)
		}
		c.Next()
	}
	RegisterRoutes(r.Group("/api"), h, auth)
	return r, rec.ID
}

func performRequest(r http.Handler, method, path string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorized {
		req.Header.Set("X-Test-User-ID", "7")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

func TestCartEndpoints(t *testing.T) {
	r, recipeID := setupRouter(t)
	path := "/api/recipes/" + itoa(recipeID) + "/shopping_cart"

	w := performRequest(r, http.MethodPost, path, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, recipeID, body.Data.ID)
	assert.Empty(t, body.Message)

	w = performRequest(r, http.MethodPost, path, true)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "already in shopping cart", body.Message)
	assert.Equal(t, "Olivier", body.Data.Name)

	w = performRequest(r, http.MethodDelete, path, true)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = performRequest(r, http.MethodDelete, path, true)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFavoriteEndpoints(t *testing.T) {
	r, recipeID := setupRouter(t)
	path := "/api/recipes/" + itoa(recipeID) + "/favorite"

	w := performRequest(r, http.MethodPost, path, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodPost, path, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already in favorites")
}

func TestEndpoints_Errors(t *testing.T) {
	r, recipeID := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/api/recipes/"+itoa(recipeID)+"/favorite", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, http.MethodPost, "/api/recipes/999/shopping_cart", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RECIPE_NOT_FOUND")

	w = performRequest(r, http.MethodPost, "/api/recipes/abc/shopping_cart", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
