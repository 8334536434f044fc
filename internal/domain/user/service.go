package user

import (
	"context"
	"errors"

	"foodgram/internal/logging"
	"foodgram/internal/pkg/apperr"
	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
)

// FollowChecker reports which of authorIDs the follower is subscribed to.
type FollowChecker interface {
	FollowedAmong(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error)
}

type Service struct {
	repo     *Repository
	jwt      *jwt.Service
	follows  FollowChecker
	hashCost int
}

func NewService(repo *Repository, jwtService *jwt.Service, follows FollowChecker) *Service {
	return &Service{
		repo:     repo,
		jwt:      jwtService,
		follows:  follows,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, apperr.WithDetails(ErrInvalidRequest, errs)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}
	exists, err = s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("user_id", u.ID).Msg("user registered")

	p := toProfile(u, false)
	return &p, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, apperr.WithDetails(ErrInvalidRequest, errs)
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AuthToken: token,
		ExpiresIn: int64(s.jwt.TTL().Seconds()),
	}, nil
}

func (s *Service) SetPassword(ctx context.Context, userID int64, req SetPasswordRequest) error {
	if errs := validator.Validate(req); errs != nil {
		return apperr.WithDetails(ErrInvalidRequest, errs)
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.hashCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

// Exists reports whether a user with id exists.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *Service) Get(ctx context.Context, viewerID, id int64) (*Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profiles, err := s.present(ctx, viewerID, []User{*u})
	if err != nil {
		return nil, err
	}
	return &profiles[0], nil
}

func (s *Service) List(ctx context.Context, viewerID int64, p pagination.Params) (pagination.Page[Profile], error) {
	users, total, err := s.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[Profile]{}, err
	}
	profiles, err := s.present(ctx, viewerID, users)
	if err != nil {
		return pagination.Page[Profile]{}, err
	}
	return pagination.NewPage(profiles, total, p), nil
}

// Profiles returns the representation of every existing user among ids,
// keyed by id.
func (s *Service) Profiles(ctx context.Context, viewerID int64, ids []int64) (map[int64]Profile, error) {
	users, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	profiles, err := s.present(ctx, viewerID, users)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]Profile, len(profiles))
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

func (s *Service) present(ctx context.Context, viewerID int64, users []User) ([]Profile, error) {
	followed := map[int64]bool{}
	if viewerID != 0 && s.follows != nil && len(users) > 0 {
		ids := make([]int64, len(users))
		for i := range users {
			ids[i] = users[i].ID
		}
		var err error
		if followed, err = s.follows.FollowedAmong(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]Profile, len(users))
	for i := range users {
		out[i] = toProfile(&users[i], followed[users[i].ID])
	}
	return out, nil
}
