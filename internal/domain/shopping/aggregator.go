package shopping

import (
	"context"
	"sort"

	"foodgram/internal/domain/recipe"
)

// Item is one line of a shopping list: the total amount of an ingredient
// across every recipe in the cart.
type Item struct {
	IngredientID int64  `json:"id"`
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	Unit         string `json:"measurement_unit"`
}

type CartReader interface {
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

type LinkReader interface {
	ListIngredientLinksForRecipes(ctx context.Context, recipeIDs []int64) ([]recipe.IngredientLink, error)
}

type Aggregator struct {
	cart  CartReader
	links LinkReader
}

func NewAggregator(cart CartReader, links LinkReader) *Aggregator {
	return &Aggregator{cart: cart, links: links}
}

// Aggregate sums ingredient amounts over the user's cart. Amounts are summed
// per catalog ingredient without unit conversion, and the result is ordered
// by name, then unit, then ingredient id.
func (a *Aggregator) Aggregate(ctx context.Context, userID int64) ([]Item, error) {
	recipeIDs, err := a.cart.RecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recipeIDs) == 0 {
		return []Item{}, nil
	}

	links, err := a.links.ListIngredientLinksForRecipes(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	return Sum(links), nil
}

// Sum groups links by ingredient and totals their amounts.
func Sum(links []recipe.IngredientLink) []Item {
	byID := make(map[int64]*Item, len(links))
	for _, l := range links {
		it, ok := byID[l.IngredientID]
		if !ok {
			it = &Item{
				IngredientID: l.IngredientID,
				Name:         l.Ingredient.Name,
				Unit:         l.Ingredient.MeasurementUnit,
			}
			byID[l.IngredientID] = it
		}
		it.Amount += int64(l.Amount)
	}

	items := make([]Item, 0, len(byID))
	for _, it := range byID {
		items = append(items, *it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		if items[i].Unit != items[j].Unit {
			return items[i].Unit < items[j].Unit
		}
		return items[i].IngredientID < items[j].IngredientID
	})
	return items
}
