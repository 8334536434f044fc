package membership

import "time"

// List identifies one per-user recipe list.
type List struct {
	Name           string
	Table          string
	AlreadyPresent string
}

var (
	Cart = List{
		Name:           "shopping_cart",
		Table:          "shopping_cart_entries",
		AlreadyPresent: "already in shopping cart",
	}
	Favorites = List{
		Name:           "favorites",
		Table:          "favorites",
		AlreadyPresent: "already in favorites",
	}
)

type CartEntry struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:idx_cart_user_recipe;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CartEntry) TableName() string { return Cart.Table }

type Favorite struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:idx_favorite_user_recipe;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Favorite) TableName() string { return Favorites.Table }

// entry is the row shape shared by every list table.
type entry struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id"`
	RecipeID  int64     `gorm:"column:recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}
