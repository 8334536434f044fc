//go:build integration

package app

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"foodgram/internal/database"
	"foodgram/internal/domain/follow"
	"foodgram/internal/domain/membership"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/testinfra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := testinfra.StartPostgres(t)
	require.True(t, database.IsPostgres(dsn))
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return &testEnv{t: t, router: New(testConfig(), db).Router, db: db}
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestPostgres_ConcurrentCartAdds(t *testing.T) {
	e := setupPostgres(t)
	tags, ings := e.seedCatalog()
	_, token := e.signup("racer")

	w, env := e.do(http.MethodPost, "/api/recipes", token, map[string]any{
		"name": "Porridge", "text": "t", "cooking_time": 10,
		"tags":        []int64{tags[0].ID},
		"ingredients": []map[string]any{{"id": ings[0].ID, "amount": 100}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decode[recipeView](t, env)
	path := "/api/recipes/" + strconv.FormatInt(rec.ID, 10) + "/shopping_cart"

	const workers = 16
	codes := make([]int, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w, _ := e.do(http.MethodPost, path, token, nil)
			codes[i] = w.Code
			return nil
		})
	}
	require.NoError(t, g.Wait())

	created := 0
	for _, c := range codes {
		require.Contains(t, []int{http.StatusCreated, http.StatusOK}, c)
		if c == http.StatusCreated {
			created++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, int64(1), countRows(t, e.db, membership.Cart.Table))
}

func TestPostgres_ConcurrentFollows(t *testing.T) {
	e := setupPostgres(t)
	authorID, _ := e.signup("star")
	_, token := e.signup("follower")
	path := "/api/users/" + strconv.FormatInt(authorID, 10) + "/subscribe"

	const workers = 8
	var g errgroup.Group
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w, _ := e.do(http.MethodPost, path, token, nil)
			codes[i] = w.Code
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, countCode(codes, http.StatusCreated))
	assert.Equal(t, workers-1, countCode(codes, http.StatusBadRequest))
	assert.Equal(t, int64(1), countRows(t, e.db, follow.Follow{}.TableName()))
}

func TestPostgres_DeleteRecipeCascades(t *testing.T) {
	e := setupPostgres(t)
	tags, ings := e.seedCatalog()
	_, token := e.signup("owner")

	w, env := e.do(http.MethodPost, "/api/recipes", token, map[string]any{
		"name": "Toast", "text": "t", "cooking_time": 3,
		"tags":        []int64{tags[0].ID, tags[1].ID},
		"ingredients": []map[string]any{{"id": ings[0].ID, "amount": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[recipeView](t, env).ID
	path := "/api/recipes/" + strconv.FormatInt(id, 10)

	for _, sub := range []string{"/shopping_cart", "/favorite"} {
		w, _ = e.do(http.MethodPost, path+sub, token, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, _ = e.do(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	ctx := context.Background()
	exists, err := recipe.NewRepository(e.db).Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
	for _, table := range []string{membership.Cart.Table, membership.Favorites.Table, "recipe_tags", "recipe_ingredients"} {
		assert.Zero(t, countRows(t, e.db, table), table)
	}
}

func countCode(codes []int, want int) int {
	n := 0
	for _, c := range codes {
		if c == want {
			n++
		}
	}
	return n
}
