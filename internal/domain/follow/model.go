package follow

import (
	"time"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

type Follow struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follow_pair"`
	AuthorID   int64     `gorm:"column:author_id;not null;uniqueIndex:idx_follow_pair;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Follow) TableName() string { return "follows" }

// AuthorView is a followed author with a preview of their recipes.
type AuthorView struct {
	user.Profile
	Recipes      []recipe.ShortView `json:"recipes"`
	RecipesCount int64              `json:"recipes_count"`
}
