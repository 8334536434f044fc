package membership

import (
	"context"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"
)

type RecipeLookup interface {
	GetRecipe(ctx context.Context, id int64) (*recipe.Recipe, error)
}

type AddResult struct {
	Recipe  recipe.ShortView
	Created bool
}

type Service struct {
	repo    *Repository
	recipes RecipeLookup
}

func NewService(repo *Repository, recipes RecipeLookup) *Service {
	return &Service{repo: repo, recipes: recipes}
}

func (s *Service) List() List { return s.repo.List() }

// Add puts the recipe in the user's list. Adding a recipe that is already
// there succeeds with Created false and changes nothing.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) (*AddResult, error) {
	rec, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	action := "added"
	if !created {
		action = "already_present"
	}
	metrics.RecordMembershipChange(s.repo.List().Name, action)
	logging.Ctx(ctx).Debug().
		Str("list", s.repo.List().Name).
		Int64("user_id", userID).
		Int64("recipe_id", recipeID).
		Bool("created", created).
		Msg("membership add")

	return &AddResult{Recipe: recipe.ToShort(rec), Created: created}, nil
}

// Remove takes the recipe out of the user's list. It is idempotent.
func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetRecipe(ctx, recipeID); err != nil {
		return err
	}
	removed, err := s.repo.Remove(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if removed {
		metrics.RecordMembershipChange(s.repo.List().Name, "removed")
	}
	return nil
}

func (s *Service) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.repo.RecipeIDs(ctx, userID)
}
