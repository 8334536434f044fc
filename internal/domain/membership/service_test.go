package membership

import (
	"context"
	"testing"

	"foodgram/internal/database/dbtest"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const user int64 = 7

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t,
		&tag.Tag{}, &ingredient.Ingredient{},
		&recipe.Recipe{}, &recipe.IngredientLink{},
		&CartEntry{}, &Favorite{},
	)
}

func createRecipe(t *testing.T, db *gorm.DB, name string) *recipe.Recipe {
	t.Helper()
	rec := &recipe.Recipe{AuthorID: 1, Name: name, Text: "text", CookingTime: 5}
	require.NoError(t, db.Omit("Tags", "Ingredients").Create(rec).Error)
	return rec
}

func newService(db *gorm.DB, list List) *Service {
	return NewService(NewRepository(db, list), recipe.NewRepository(db, Cart.Table, Favorites.Table))
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestAdd_Twice_OneRow(t *testing.T) {
	db := setupDB(t)
	svc := newService(db, Cart)
	rec := createRecipe(t, db, "Borscht")
	ctx := context.Background()

	first, err := svc.Add(ctx, user, rec.ID)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, recipe.ShortView{ID: rec.ID, Name: "Borscht", CookingTime: 5}, first.Recipe)

	second, err := svc.Add(ctx, user, rec.ID)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Recipe, second.Recipe)

	assert.Equal(t, int64(1), countRows(t, db, Cart.Table))

	member, err := svc.repo.IsMember(ctx, user, rec.ID)
	require.NoError(t, err)
	assert.True(t, member)
}

func TestRemove_Idempotent(t *testing.T) {
	db := setupDB(t)
	svc := newService(db, Favorites)
	rec := createRecipe(t, db, "Syrniki")
	ctx := context.Background()

	// absent pair
	require.NoError(t, svc.Remove(ctx, user, rec.ID))

	_, err := svc.Add(ctx, user, rec.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, user, rec.ID))
	require.NoError(t, svc.Remove(ctx, user, rec.ID))

	assert.Zero(t, countRows(t, db, Favorites.Table))
}

func TestUnknownRecipe(t *testing.T) {
	db := setupDB(t)
	svc := newService(db, Cart)
	ctx := context.Background()

	_, err := svc.Add(ctx, user, 404)
	assert.ErrorIs(t, err, recipe.ErrNotFound)

	err = svc.Remove(ctx, user, 404)
	assert.ErrorIs(t, err, recipe.ErrNotFound)
}

func TestListsAreIndependent(t *testing.T) {
	db := setupDB(t)
	cart := newService(db, Cart)
	favorites := newService(db, Favorites)
	r1 := createRecipe(t, db, "one")
	r2 := createRecipe(t, db, "two")
	ctx := context.Background()

	_, err := cart.Add(ctx, user, r1.ID)
	require.NoError(t, err)
	_, err = cart.Add(ctx, user, r2.ID)
	require.NoError(t, err)
	_, err = favorites.Add(ctx, user, r2.ID)
	require.NoError(t, err)
	_, err = cart.Add(ctx, user+1, r2.ID)
	require.NoError(t, err)

	ids, err := cart.RecipeIDs(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []int64{r1.ID, r2.ID}, ids)

	ids, err = favorites.RecipeIDs(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []int64{r2.ID}, ids)
}

func TestRecipeDeleteClearsLists(t *testing.T) {
	db := setupDB(t)
	cart := newService(db, Cart)
	favorites := newService(db, Favorites)
	rec := createRecipe(t, db, "gone")
	ctx := context.Background()

	_, err := cart.Add(ctx, user, rec.ID)
	require.NoError(t, err)
	_, err = favorites.Add(ctx, user, rec.ID)
	require.NoError(t, err)

	require.NoError(t, recipe.NewRepository(db, Cart.Table, Favorites.Table).Delete(ctx, rec.ID))

	assert.Zero(t, countRows(t, db, Cart.Table))
	assert.Zero(t, countRows(t, db, Favorites.Table))
}
