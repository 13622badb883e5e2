package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftly/internal/shared/config"
	"giftly/internal/users"
)

type fakeAuthRepo struct {
	byEmail map[string]*users.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: make(map[string]*users.User)}
}

func (f *fakeAuthRepo) CreateUser(ctx context.Context, user *users.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeAuthRepo) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeAuthRepo) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	for _, user := range f.byEmail {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeAuthRepo) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	for _, user := range f.byEmail {
		if user.ID.String() == userID {
			user.Password = hashedPassword
			return nil
		}
	}
	return ErrUserNotFound
}

func (f *fakeAuthRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newAuthTestService() (*fakeAuthRepo, Service) {
	repo := newFakeAuthRepo()
	usersService := users.NewService(usersRepoAdapter{repo})
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
	return repo, NewService(repo, usersService, cfg)
}

// usersRepoAdapter exposes the auth test repository through the users
// repository interface so FindOrCreate runs against the same state
type usersRepoAdapter struct {
	repo *fakeAuthRepo
}

func (a usersRepoAdapter) Create(ctx context.Context, user *users.User) error {
	if _, exists := a.repo.byEmail[user.Email]; exists {
		return users.ErrEmailExists
	}
	a.repo.byEmail[user.Email] = user
	return nil
}

func (a usersRepoAdapter) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	for _, user := range a.repo.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (a usersRepoAdapter) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := a.repo.byEmail[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (a usersRepoAdapter) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*users.User, error) {
	return nil, users.ErrUserNotFound
}

func (a usersRepoAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	_, svc := newAuthTestService()

	registered, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)

	loggedIn, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestLoginWrongPasswordFails(t *testing.T) {
	_, svc := newAuthTestService()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "a@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	_, svc := newAuthTestService()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &RegisterRequest{
		Email:    "a@example.com",
		Password: "other-password",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestProviderSignInCreatesPasswordlessUser(t *testing.T) {
	repo, svc := newAuthTestService()

	resp, err := svc.ProviderSignIn(context.Background(), &ProviderSignInRequest{
		Email: "a@example.com",
		Name:  "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	user := repo.byEmail["a@example.com"]
	require.NotNil(t, user)
	assert.Empty(t, user.Password)

	// Password login is closed for provider accounts
	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "a@example.com",
		Password: "anything-at-all",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProviderSignInIsIdempotentPerEmail(t *testing.T) {
	_, svc := newAuthTestService()

	first, err := svc.ProviderSignIn(context.Background(), &ProviderSignInRequest{Email: "a@example.com"})
	require.NoError(t, err)

	second, err := svc.ProviderSignIn(context.Background(), &ProviderSignInRequest{Email: "a@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestAccessTokenValidatesAndCarriesClaims(t *testing.T) {
	_, svc := newAuthTestService()

	registered, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	_, svc := newAuthTestService()

	registered, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token
	_, err = svc.RefreshToken(context.Background(), registered.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	pair, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}
