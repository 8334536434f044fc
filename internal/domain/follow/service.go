package follow

import (
	"context"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
	"foodgram/internal/logging"
	"foodgram/internal/pkg/pagination"
)

type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Profiles(ctx context.Context, viewerID int64, ids []int64) (map[int64]user.Profile, error)
}

type RecipeSource interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]recipe.Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)
}

type Service struct {
	repo    *Repository
	users   UserDirectory
	recipes RecipeSource
}

func NewService(repo *Repository, users UserDirectory, recipes RecipeSource) *Service {
	return &Service{repo: repo, users: users, recipes: recipes}
}

// Follow subscribes followerID to authorID. recipesLimit bounds the recipe
// preview in the returned view; 0 means no limit.
func (s *Service) Follow(ctx context.Context, followerID, authorID int64, recipesLimit int) (*AuthorView, error) {
	if followerID == authorID {
		return nil, ErrSelfFollow
	}
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFollowing
	}
	if err := s.repo.Create(ctx, followerID, authorID); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("follower_id", followerID).Int64("author_id", authorID).Msg("subscribed")

	views, err := s.present(ctx, followerID, []int64{authorID}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) Unfollow(ctx context.Context, followerID, authorID int64) error {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, followerID, authorID)
}

func (s *Service) Subscriptions(ctx context.Context, followerID int64, p pagination.Params, recipesLimit int) (pagination.Page[AuthorView], error) {
	ids, total, err := s.repo.ListAuthors(ctx, followerID, p)
	if err != nil {
		return pagination.Page[AuthorView]{}, err
	}
	views, err := s.present(ctx, followerID, ids, recipesLimit)
	if err != nil {
		return pagination.Page[AuthorView]{}, err
	}
	return pagination.NewPage(views, total, p), nil
}

func (s *Service) requireAuthor(ctx context.Context, authorID int64) error {
	ok, err := s.users.Exists(ctx, authorID)
	if err != nil {
		return err
	}
	if !ok {
		return user.ErrNotFound
	}
	return nil
}

func (s *Service) present(ctx context.Context, viewerID int64, authorIDs []int64, recipesLimit int) ([]AuthorView, error) {
	profiles, err := s.users.Profiles(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}
	counts, err := s.recipes.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]AuthorView, 0, len(authorIDs))
	for _, id := range authorIDs {
		profile, ok := profiles[id]
		if !ok {
			continue
		}
		recipes, err := s.recipes.ListByAuthor(ctx, id, recipesLimit)
		if err != nil {
			return nil, err
		}
		short := make([]recipe.ShortView, len(recipes))
		for i := range recipes {
			short[i] = recipe.ToShort(&recipes[i])
		}
		out = append(out, AuthorView{Profile: profile, Recipes: short, RecipesCount: counts[id]})
	}
	return out, nil
}
