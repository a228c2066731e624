package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainrecipe "github.com/recipehub/backend/internal/domain/recipe"
	domain "github.com/recipehub/backend/internal/domain/user"
	"github.com/recipehub/backend/internal/ports/inbound"
	"github.com/recipehub/backend/internal/ports/outbound"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) Insert(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userRepoMock) FindByUsername(ctx context.Context, username domain.Username) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userRepoMock) UpdatePassword(ctx context.Context, id int64, hash domain.PasswordHash) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

type recipeRepoMock struct {
	mock.Mock
}

func (m *recipeRepoMock) Insert(ctx context.Context, r *domainrecipe.Recipe) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *recipeRepoMock) FindByID(ctx context.Context, id int64) (*domainrecipe.Recipe, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domainrecipe.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *recipeRepoMock) RateToggle(ctx context.Context, recipeID, userID int64, stars domainrecipe.Stars) (domainrecipe.Stars, error) {
	args := m.Called(ctx, recipeID, userID, stars)
	return args.Get(0).(domainrecipe.Stars), args.Error(1)
}

func (m *recipeRepoMock) InsertComment(ctx context.Context, recipeID, userID int64, content domainrecipe.CommentContent, publishedAt time.Time) error {
	args := m.Called(ctx, recipeID, userID, content, publishedAt)
	return args.Error(0)
}

func (m *recipeRepoMock) FindByPage(ctx context.Context, page, pageSize int, sort domainrecipe.SortType) ([]*domainrecipe.Recipe, error) {
	args := m.Called(ctx, page, pageSize, sort)
	if r := args.Get(0); r != nil {
		return r.([]*domainrecipe.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *recipeRepoMock) FindByQuery(ctx context.Context, query string) ([]*domainrecipe.Recipe, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.([]*domainrecipe.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *recipeRepoMock) FindByAuthor(ctx context.Context, authorID int64) ([]*domainrecipe.Recipe, error) {
	args := m.Called(ctx, authorID)
	if r := args.Get(0); r != nil {
		return r.([]*domainrecipe.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *recipeRepoMock) Update(ctx context.Context, patch outbound.RecipeUpdate) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func (m *recipeRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type hasherMock struct {
	mock.Mock
}

func (m *hasherMock) Hash(plain string) (domain.PasswordHash, error) {
	args := m.Called(plain)
	return args.Get(0).(domain.PasswordHash), args.Error(1)
}

func (m *hasherMock) Verify(plain string, hash domain.PasswordHash) bool {
	args := m.Called(plain, hash)
	return args.Bool(0)
}

type signerMock struct {
	mock.Mock
}

func (m *signerMock) Sign(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type adminPolicyMock struct {
	mock.Mock
}

func (m *adminPolicyMock) IsAdminUsername(username domain.Username) bool {
	args := m.Called(username)
	return args.Bool(0)
}

type fixture struct {
	svc     *Service
	users   *userRepoMock
	recipes *recipeRepoMock
	hasher  *hasherMock
	signer  *signerMock
	admins  *adminPolicyMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:   &userRepoMock{},
		recipes: &recipeRepoMock{},
		hasher:  &hasherMock{},
		signer:  &signerMock{},
		admins:  &adminPolicyMock{},
	}
	f.svc = NewService(f.users, f.recipes, f.hasher, f.signer, f.admins, zap.NewNop())
	return f
}

func mustUsername(t *testing.T, raw string) domain.Username {
	t.Helper()
	username, err := domain.NewUsername(raw)
	require.NoError(t, err)
	return username
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	hash := domain.NewPasswordHash("$2a$10$fakehash")

	t.Run("creates a classic account and returns a token", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByUsername", ctx, mock.Anything).Return(nil, nil)
		f.hasher.On("Hash", "s3cret-pass").Return(hash, nil)
		f.admins.On("IsAdminUsername", mock.Anything).Return(false)
		f.users.On("Insert", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleClassic && u.Username.Value() == "chef_anton"
		})).Return(int64(5), nil)
		f.signer.On("Sign", int64(5)).Return("token-5", nil)

		token, err := f.svc.Register(ctx, inbound.Credentials{Username: "chef_anton", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.Equal(t, "token-5", token)
		f.users.AssertExpectations(t)
	})

	t.Run("grants admin per policy", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByUsername", ctx, mock.Anything).Return(nil, nil)
		f.hasher.On("Hash", mock.Anything).Return(hash, nil)
		f.admins.On("IsAdminUsername", mock.Anything).Return(true)
		f.users.On("Insert", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleAdmin
		})).Return(int64(1), nil)
		f.signer.On("Sign", int64(1)).Return("token-1", nil)

		_, err := f.svc.Register(ctx, inbound.Credentials{Username: "site_owner", Password: "s3cret-pass"})

		require.NoError(t, err)
		f.users.AssertExpectations(t)
	})

	t.Run("rejects a taken username up front", func(t *testing.T) {
		f := newFixture(t)
		taken := &domain.User{ID: 3, Username: mustUsername(t, "chef_anton"), Role: domain.RoleClassic}
		f.users.On("FindByUsername", ctx, mock.Anything).Return(taken, nil)

		_, err := f.svc.Register(ctx, inbound.Credentials{Username: "chef_anton", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		f.users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("maps a concurrent duplicate to a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByUsername", ctx, mock.Anything).Return(nil, nil)
		f.hasher.On("Hash", mock.Anything).Return(hash, nil)
		f.admins.On("IsAdminUsername", mock.Anything).Return(false)
		f.users.On("Insert", ctx, mock.Anything).Return(int64(0), outbound.ErrDuplicateUsername)

		_, err := f.svc.Register(ctx, inbound.Credentials{Username: "chef_anton", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects a malformed username without storage calls", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Register(ctx, inbound.Credentials{Username: "_bad", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, domain.ErrUsernameUnallowedSymbols)
		f.users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash := domain.NewPasswordHash("$2a$10$fakehash")

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		f := newFixture(t)
		account := &domain.User{ID: 5, Username: mustUsername(t, "chef_anton"), Password: hash, Role: domain.RoleClassic}
		f.users.On("FindByUsername", ctx, mock.Anything).Return(account, nil)
		f.hasher.On("Verify", "s3cret-pass", hash).Return(true)
		f.signer.On("Sign", int64(5)).Return("token-5", nil)

		token, err := f.svc.Login(ctx, inbound.Credentials{Username: "chef_anton", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.Equal(t, "token-5", token)
	})

	t.Run("unknown username", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByUsername", ctx, mock.Anything).Return(nil, nil)

		_, err := f.svc.Login(ctx, inbound.Credentials{Username: "nobody_here", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, ErrUsernameNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		account := &domain.User{ID: 5, Username: mustUsername(t, "chef_anton"), Password: hash, Role: domain.RoleClassic}
		f.users.On("FindByUsername", ctx, mock.Anything).Return(account, nil)
		f.hasher.On("Verify", "wrong-pass", hash).Return(false)

		_, err := f.svc.Login(ctx, inbound.Credentials{Username: "chef_anton", Password: "wrong-pass"})

		assert.ErrorIs(t, err, ErrPasswordIsIncorrect)
		f.signer.AssertNotCalled(t, "Sign", mock.Anything)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	oldHash := domain.NewPasswordHash("$2a$10$oldhash")
	newHash := domain.NewPasswordHash("$2a$10$newhash")

	t.Run("rotates the password", func(t *testing.T) {
		f := newFixture(t)
		account := &domain.User{ID: 5, Username: mustUsername(t, "chef_anton"), Password: oldHash, Role: domain.RoleClassic}
		f.users.On("FindByID", ctx, int64(5)).Return(account, nil)
		f.hasher.On("Verify", "old-pass", oldHash).Return(true)
		f.hasher.On("Hash", "new-pass").Return(newHash, nil)
		f.users.On("UpdatePassword", ctx, int64(5), newHash).Return(nil)

		err := f.svc.ChangePassword(ctx, inbound.ChangePasswordCommand{UserID: 5, CurrentPassword: "old-pass", NewPassword: "new-pass"})

		require.NoError(t, err)
		f.users.AssertExpectations(t)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		f := newFixture(t)
		account := &domain.User{ID: 5, Username: mustUsername(t, "chef_anton"), Password: oldHash, Role: domain.RoleClassic}
		f.users.On("FindByID", ctx, int64(5)).Return(account, nil)
		f.hasher.On("Verify", "wrong", oldHash).Return(false)

		err := f.svc.ChangePassword(ctx, inbound.ChangePasswordCommand{UserID: 5, CurrentPassword: "wrong", NewPassword: "new-pass"})

		assert.ErrorIs(t, err, ErrPasswordIsIncorrect)
		f.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the profile with recipe summaries", func(t *testing.T) {
		f := newFixture(t)
		account := &domain.User{ID: 5, Username: mustUsername(t, "chef_anton"), Role: domain.RoleClassic}
		f.users.On("FindByID", ctx, int64(5)).Return(account, nil)

		title, err := domainrecipe.NewTitle("Classic Borscht")
		require.NoError(t, err)
		f.recipes.On("FindByAuthor", ctx, int64(5)).Return([]*domainrecipe.Recipe{
			{ID: 7, AuthorID: 5, Title: title, Rate: domainrecipe.Rate{Value: 4.5, Votes: 12}},
		}, nil)

		profile, err := f.svc.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "chef_anton", profile.Username)
		require.Len(t, profile.Recipes, 1)
		assert.Equal(t, 12, profile.Recipes[0].Votes)
		assert.InDelta(t, 4.5, profile.Recipes[0].Rating, 0.0001)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByID", ctx, int64(404)).Return(nil, nil)

		_, err := f.svc.GetByID(ctx, 404)

		assert.ErrorIs(t, err, ErrUserIdNotFound)
		f.recipes.AssertNotCalled(t, "FindByAuthor", mock.Anything, mock.Anything)
	})
}
