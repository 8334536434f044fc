package recipe

import (
	"context"
	"fmt"
	"strings"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/logging"
	"foodgram/internal/pkg/apperr"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/validator"
)

type IngredientLookup interface {
	GetByIDs(ctx context.Context, ids []int64) ([]ingredient.Ingredient, error)
}

type TagLookup interface {
	GetByIDs(ctx context.Context, ids []int64) ([]tag.Tag, error)
}

type AuthorPresenter interface {
	Profiles(ctx context.Context, viewerID int64, ids []int64) (map[int64]user.Profile, error)
}

// MembershipReader lists the recipes in one of a user's lists.
type MembershipReader interface {
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

type Service struct {
	repo        *Repository
	ingredients IngredientLookup
	tags        TagLookup
	authors     AuthorPresenter
	favorites   MembershipReader
	cart        MembershipReader
}

func NewService(
	repo *Repository,
	ingredients IngredientLookup,
	tags TagLookup,
	authors AuthorPresenter,
	favorites MembershipReader,
	cart MembershipReader,
) *Service {
	return &Service{
		repo:        repo,
		ingredients: ingredients,
		tags:        tags,
		authors:     authors,
		favorites:   favorites,
		cart:        cart,
	}
}

func (s *Service) Create(ctx context.Context, authorID int64, req WriteRequest) (*View, error) {
	links, err := s.validate(ctx, &req)
	if err != nil {
		return nil, err
	}

	rec := &Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Create(ctx, rec, req.Tags, links); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("recipe_id", rec.ID).Int64("author_id", authorID).Msg("recipe created")
	return s.Get(ctx, authorID, rec.ID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req WriteRequest) (*View, error) {
	if err := s.authorize(ctx, userID, id); err != nil {
		return nil, err
	}
	links, err := s.validate(ctx, &req)
	if err != nil {
		return nil, err
	}

	rec := &Recipe{
		ID:          id,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Update(ctx, rec, req.Tags, links); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.authorize(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int64("recipe_id", id).Msg("recipe deleted")
	return nil
}

func (s *Service) authorize(ctx context.Context, userID, id int64) error {
	rec, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if rec.AuthorID != userID {
		return ErrForbidden
	}
	return nil
}

func (s *Service) Get(ctx context.Context, viewerID, id int64) (*View, error) {
	rec, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.present(ctx, viewerID, []Recipe{*rec})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// List applies q for viewerID. The favorite and cart filters only apply to
// authenticated viewers.
func (s *Service) List(ctx context.Context, viewerID int64, q ListQuery, p pagination.Params) (pagination.Page[View], error) {
	f := Filter{AuthorID: q.AuthorID, TagSlugs: q.TagSlugs}

	if viewerID != 0 && q.Favorited {
		ids, err := s.favorites.RecipeIDs(ctx, viewerID)
		if err != nil {
			return pagination.Page[View]{}, err
		}
		f.RecipeIDs = nonNil(ids)
	}
	if viewerID != 0 && q.InCart {
		ids, err := s.cart.RecipeIDs(ctx, viewerID)
		if err != nil {
			return pagination.Page[View]{}, err
		}
		if f.RecipeIDs != nil {
			ids = intersect(f.RecipeIDs, ids)
		}
		f.RecipeIDs = nonNil(ids)
	}

	recipes, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		return pagination.Page[View]{}, err
	}
	views, err := s.present(ctx, viewerID, recipes)
	if err != nil {
		return pagination.Page[View]{}, err
	}
	return pagination.NewPage(views, total, p), nil
}

// validate normalizes req, checks it and resolves the ingredient links. It
// touches no state, so a failing request persists nothing.
func (s *Service) validate(ctx context.Context, req *WriteRequest) ([]IngredientLink, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Text = strings.TrimSpace(req.Text)
	req.Image = strings.TrimSpace(req.Image)

	if errs := validator.Validate(req); errs != nil {
		return nil, apperr.WithDetails(ErrInvalidRequest, errs)
	}

	seenIng := make(map[int64]int, len(req.Ingredients))
	ingIDs := make([]int64, 0, len(req.Ingredients))
	for i, item := range req.Ingredients {
		if first, dup := seenIng[item.ID]; dup {
			return nil, apperr.WithDetails(ErrDuplicateIngredient, map[string]string{
				fmt.Sprintf("ingredients[%d].id", i): fmt.Sprintf("duplicate of ingredients[%d]", first),
			})
		}
		seenIng[item.ID] = i
		ingIDs = append(ingIDs, item.ID)
	}

	seenTag := make(map[int64]int, len(req.Tags))
	for i, id := range req.Tags {
		if first, dup := seenTag[id]; dup {
			return nil, apperr.WithDetails(ErrDuplicateTag, map[string]string{
				fmt.Sprintf("tags[%d]", i): fmt.Sprintf("duplicate of tags[%d]", first),
			})
		}
		seenTag[id] = i
	}

	found, err := s.ingredients.GetByIDs(ctx, ingIDs)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(ingIDs, ingredientIDs(found)); len(missing) > 0 {
		return nil, apperr.WithDetails(ingredient.ErrNotFound, map[string]string{"ingredients": joinIDs(missing)})
	}

	tags, err := s.tags.GetByIDs(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(req.Tags, tagIDs(tags)); len(missing) > 0 {
		return nil, apperr.WithDetails(tag.ErrNotFound, map[string]string{"tags": joinIDs(missing)})
	}

	links := make([]IngredientLink, len(req.Ingredients))
	for i, item := range req.Ingredients {
		links[i] = IngredientLink{IngredientID: item.ID, Amount: item.Amount}
	}
	return links, nil
}

func (s *Service) present(ctx context.Context, viewerID int64, recipes []Recipe) ([]View, error) {
	authorIDs := make([]int64, 0, len(recipes))
	for i := range recipes {
		authorIDs = append(authorIDs, recipes[i].AuthorID)
	}
	authors, err := s.authors.Profiles(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	favorited, inCart := map[int64]bool{}, map[int64]bool{}
	if viewerID != 0 && len(recipes) > 0 {
		if favorited, err = s.idSet(ctx, s.favorites, viewerID); err != nil {
			return nil, err
		}
		if inCart, err = s.idSet(ctx, s.cart, viewerID); err != nil {
			return nil, err
		}
	}

	out := make([]View, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		out[i] = toView(r, authors[r.AuthorID], favorited[r.ID], inCart[r.ID])
	}
	return out, nil
}

func (s *Service) idSet(ctx context.Context, m MembershipReader, userID int64) (map[int64]bool, error) {
	ids, err := m.RecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func ingredientIDs(items []ingredient.Ingredient) []int64 {
	out := make([]int64, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func tagIDs(items []tag.Tag) []int64 {
	out := make([]int64, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func missingIDs(want, have []int64) []int64 {
	set := make(map[int64]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}
	var missing []int64
	for _, id := range want {
		if _, ok := set[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func intersect(a, b []int64) []int64 {
	set := make(map[int64]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	out := []int64{}
	for _, id := range b {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
