package recipe

import (
	"context"
	"errors"

	"foodgram/internal/database"
	"foodgram/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Filter narrows List. RecipeIDs, when non-nil, restricts the result to
// those ids; an empty non-nil slice matches nothing.
type Filter struct {
	AuthorID  int64
	TagSlugs  []string
	RecipeIDs []int64
}

type Repository struct {
	db *gorm.DB
	// tables holding per-user rows keyed by recipe_id that go away with the
	// recipe
	dependents []string
}

func NewRepository(db *gorm.DB, dependentTables ...string) *Repository {
	return &Repository{db: db, dependents: dependentTables}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id ASC") }).
		Preload("Ingredients.Ingredient")
}

// Create stores the recipe, its tag set and its ingredient links atomically.
func (r *Repository) Create(ctx context.Context, rec *Recipe, tagIDs []int64, links []IngredientLink) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Create(rec).Error; err != nil {
			return err
		}
		return writeRelations(tx, rec.ID, tagIDs, links)
	})
}

// Update overwrites the scalar fields and replaces tags and ingredient links
// entirely.
func (r *Repository) Update(ctx context.Context, rec *Recipe, tagIDs []int64, links []IngredientLink) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Recipe{}).
			Where("id = ?", rec.ID).
			Select("name", "text", "image", "cooking_time").
			Updates(map[string]any{
				"name":         rec.Name,
				"text":         rec.Text,
				"image":        rec.Image,
				"cooking_time": rec.CookingTime,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&recipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&IngredientLink{}).Error; err != nil {
			return err
		}
		return writeRelations(tx, rec.ID, tagIDs, links)
	})
}

func writeRelations(tx *gorm.DB, recipeID int64, tagIDs []int64, links []IngredientLink) error {
	if len(tagIDs) > 0 {
		rows := make([]recipeTag, len(tagIDs))
		for i, id := range tagIDs {
			rows[i] = recipeTag{RecipeID: recipeID, TagID: id}
		}
		if err := tx.Create(&rows).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return ErrDuplicateTag
			}
			return err
		}
	}

	if len(links) > 0 {
		rows := make([]IngredientLink, len(links))
		for i, l := range links {
			rows[i] = IngredientLink{RecipeID: recipeID, IngredientID: l.IngredientID, Amount: l.Amount}
		}
		if err := tx.Omit("Ingredient").Create(&rows).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return ErrDuplicateIngredient
			}
			return err
		}
	}
	return nil
}

// Delete removes the recipe with everything that references it.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range r.dependents {
			if err := tx.Exec("DELETE FROM "+table+" WHERE recipe_id = ?", id).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&recipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&IngredientLink{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetRecipe loads a recipe with tags and ingredient links.
func (r *Repository) GetRecipe(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	err := withDetails(r.db.WithContext(ctx)).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListIngredientLinks(ctx context.Context, recipeID int64) ([]IngredientLink, error) {
	return r.ListIngredientLinksForRecipes(ctx, []int64{recipeID})
}

// ListIngredientLinksForRecipes returns the links of all given recipes with
// their catalog ingredient loaded.
func (r *Repository) ListIngredientLinksForRecipes(ctx context.Context, recipeIDs []int64) ([]IngredientLink, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	var links []IngredientLink
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id IN ?", recipeIDs).
		Order("id ASC").
		Find(&links).Error
	return links, err
}

func (r *Repository) List(ctx context.Context, f Filter, p pagination.Params) ([]Recipe, int64, error) {
	if f.RecipeIDs != nil && len(f.RecipeIDs) == 0 {
		return nil, 0, nil
	}

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Model(&Recipe{})
		if f.AuthorID != 0 {
			db = db.Where("recipes.author_id = ?", f.AuthorID)
		}
		if len(f.TagSlugs) > 0 {
			sub := r.db.Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", f.TagSlugs)
			db = db.Where("recipes.id IN (?)", sub)
		}
		if f.RecipeIDs != nil {
			db = db.Where("recipes.id IN ?", f.RecipeIDs)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []Recipe
	err := withDetails(r.db.WithContext(ctx).Scopes(scope)).
		Order("recipes.created_at DESC").
		Order("recipes.id DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&recipes).Error
	return recipes, total, err
}

// ListByAuthor returns up to limit of the author's newest recipes; limit <= 0
// means all.
func (r *Repository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error) {
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []Recipe
	err := q.Find(&recipes).Error
	return recipes, err
}

// CountByAuthors returns the number of recipes per author.
func (r *Repository) CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		AuthorID int64
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.AuthorID] = row.Total
	}
	return out, nil
}
