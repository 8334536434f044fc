package recipe

import (
	"time"

	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
)

type IngredientAmount struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	Amount int   `json:"amount" validate:"required,min=1,max=32000"`
}

// WriteRequest is the payload of both create and update; update replaces the
// whole recipe including its tag set and ingredient list.
type WriteRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	Image       string             `json:"image"`
	CookingTime int                `json:"cooking_time" validate:"required,min=1,max=32000"`
	Tags        []int64            `json:"tags" validate:"required,min=1,dive,gt=0"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
}

type ListQuery struct {
	AuthorID  int64
	TagSlugs  []string
	Favorited bool
	InCart    bool
}

type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type View struct {
	ID               int64            `json:"id"`
	Tags             []tag.Tag        `json:"tags"`
	Author           user.Profile     `json:"author"`
	Ingredients      []IngredientView `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ShortView is the compact representation used by cart, favorite and
// subscription responses.
type ShortView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func ToShort(r *Recipe) ShortView {
	return ShortView{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

func toView(r *Recipe, author user.Profile, favorited, inCart bool) View {
	tags := r.Tags
	if tags == nil {
		tags = []tag.Tag{}
	}
	ings := make([]IngredientView, len(r.Ingredients))
	for i, l := range r.Ingredients {
		ings[i] = IngredientView{
			ID:              l.IngredientID,
			Name:            l.Ingredient.Name,
			MeasurementUnit: l.Ingredient.MeasurementUnit,
			Amount:          l.Amount,
		}
	}
	return View{
		ID:               r.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ings,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		CreatedAt:        r.CreatedAt,
	}
}
