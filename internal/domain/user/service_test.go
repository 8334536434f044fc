package user

import (
	"context"
	"testing"
	"time"

	"foodgram/internal/database/dbtest"
	"foodgram/internal/pkg/apperr"
	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockFollowChecker struct {
	mock.Mock
}

func (m *mockFollowChecker) FollowedAmong(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, followerID, authorIDs)
	if v := args.Get(0); v != nil {
		return v.(map[int64]bool), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(t *testing.T, follows FollowChecker) *Service {
	t.Helper()
	db := dbtest.Open(t, &User{})
	svc := NewService(NewRepository(db), jwt.New("test-secret", time.Hour), follows)
	svc.hashCost = bcrypt.MinCost
	return svc
}

func validRegister(email, username string) RegisterRequest {
	return RegisterRequest{
		Email:     email,
		Username:  username,
		FirstName: "Ivan",
		LastName:  "Petrov",
		Password:  "s3cret-pass",
	}
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService(t, nil)

	p, err := svc.Register(context.Background(), validRegister("Chef@Example.com", "chef"))
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "chef@example.com", p.Email)
	assert.False(t, p.IsSubscribed)
}

func TestRegister_Duplicates(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegister("a@example.com", "alice"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegister("A@example.com", "other"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(ctx, validRegister("b@example.com", "alice"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRegister_Invalid(t *testing.T) {
	svc := newTestService(t, nil)

	req := validRegister("not-an-email", "bad name")
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidRequest)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email", appErr.Details["email"])
	assert.Equal(t, "username", appErr.Details["username"])
	assert.Equal(t, "min=8", appErr.Details["password"])
}

func TestLogin(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	p, err := svc.Register(ctx, validRegister("cook@example.com", "cook"))
	require.NoError(t, err)

	tok, err := svc.Login(ctx, LoginRequest{Email: "cook@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), tok.ExpiresIn)

	claims, err := svc.jwt.ValidateToken(tok.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, p.ID, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	_, err = svc.Login(ctx, LoginRequest{Email: "cook@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetPassword(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	p, err := svc.Register(ctx, validRegister("pw@example.com", "pw"))
	require.NoError(t, err)

	err = svc.SetPassword(ctx, p.ID, SetPasswordRequest{CurrentPassword: "nope-nope", NewPassword: "brand-new-pass"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.SetPassword(ctx, p.ID, SetPasswordRequest{CurrentPassword: "s3cret-pass", NewPassword: "brand-new-pass"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "pw@example.com", Password: "brand-new-pass"})
	assert.NoError(t, err)
}

func TestGetAndList_IsSubscribed(t *testing.T) {
	follows := new(mockFollowChecker)
	svc := newTestService(t, follows)
	ctx := context.Background()

	viewer, err := svc.Register(ctx, validRegister("viewer@example.com", "viewer"))
	require.NoError(t, err)
	author, err := svc.Register(ctx, validRegister("author@example.com", "author"))
	require.NoError(t, err)

	follows.On("FollowedAmong", mock.Anything, viewer.ID, []int64{author.ID}).
		Return(map[int64]bool{author.ID: true}, nil).Once()

	got, err := svc.Get(ctx, viewer.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSubscribed)

	// anonymous viewers never consult the follow store
	got, err = svc.Get(ctx, 0, author.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSubscribed)

	follows.On("FollowedAmong", mock.Anything, viewer.ID, []int64{viewer.ID, author.ID}).
		Return(map[int64]bool{author.ID: true}, nil).Once()

	page, err := svc.List(ctx, viewer.ID, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
	require.Len(t, page.Results, 2)
	assert.False(t, page.Results[0].IsSubscribed)
	assert.True(t, page.Results[1].IsSubscribed)

	_, err = svc.Get(ctx, viewer.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	follows.AssertExpectations(t)
}
