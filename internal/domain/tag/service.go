package tag

import (
	"context"
	"strings"

	"foodgram/internal/pkg/apperr"
	"foodgram/internal/pkg/validator"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Tag, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Tag, error) {
	req.Color = strings.ToUpper(strings.TrimSpace(req.Color))
	if errs := validator.Validate(req); errs != nil {
		return nil, apperr.WithDetails(ErrInvalidRequest, errs)
	}

	t := &Tag{Name: strings.TrimSpace(req.Name), Color: req.Color, Slug: req.Slug}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
