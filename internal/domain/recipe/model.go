package recipe

import (
	"time"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/tag"
)

type Recipe struct {
	ID          int64            `gorm:"column:id;primaryKey"`
	AuthorID    int64            `gorm:"column:author_id;not null;index"`
	Name        string           `gorm:"column:name;size:200;not null"`
	Text        string           `gorm:"column:text;type:text;not null"`
	Image       string           `gorm:"column:image;type:text"`
	CookingTime int              `gorm:"column:cooking_time;not null"`
	CreatedAt   time.Time        `gorm:"column:created_at;index"`
	Tags        []tag.Tag        `gorm:"many2many:recipe_tags"`
	Ingredients []IngredientLink `gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string { return "recipes" }

// IngredientLink is a quantified use of a catalog ingredient in a recipe.
// An ingredient appears at most once per recipe.
type IngredientLink struct {
	ID           int64                 `gorm:"column:id;primaryKey"`
	RecipeID     int64                 `gorm:"column:recipe_id;not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64                 `gorm:"column:ingredient_id;not null;uniqueIndex:idx_recipe_ingredient;index"`
	Amount       int                   `gorm:"column:amount;not null"`
	Ingredient   ingredient.Ingredient `gorm:"foreignKey:IngredientID"`
}

func (IngredientLink) TableName() string { return "recipe_ingredients" }

// recipeTag is a row of the recipe_tags join table managed by the Tags
// association.
type recipeTag struct {
	RecipeID int64 `gorm:"column:recipe_id;primaryKey"`
	TagID    int64 `gorm:"column:tag_id;primaryKey"`
}

func (recipeTag) TableName() string { return "recipe_tags" }
