package membership

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db   *gorm.DB
	list List
}

func NewRepository(db *gorm.DB, list List) *Repository {
	return &Repository{db: db, list: list}
}

func (r *Repository) List() List { return r.list }

func (r *Repository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.list.Table)
}

func (r *Repository) IsMember(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.table(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts the pair unless it is already present and reports whether a
// row was created. It relies on the (user_id, recipe_id) unique index, so
// concurrent adds of the same pair leave exactly one row.
func (r *Repository) Add(ctx context.Context, userID, recipeID int64) (bool, error) {
	row := entry{UserID: userID, RecipeID: recipeID, CreatedAt: time.Now()}
	res := r.table(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove deletes the pair and reports whether it existed. Removing an absent
// pair is not an error.
func (r *Repository) Remove(ctx context.Context, userID, recipeID int64) (bool, error) {
	res := r.table(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RecipeIDs returns the recipes in the user's list, oldest first.
func (r *Repository) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.table(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Pluck("recipe_id", &ids).Error
	return ids, err
}
