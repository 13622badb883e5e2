package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*User

	// raceOnCreate simulates a concurrent insert winning between the
	// GetByEmail miss and the Create attempt
	raceOnCreate *User
	createCalls  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	f.createCalls++
	if f.raceOnCreate != nil {
		f.byEmail[f.raceOnCreate.Email] = f.raceOnCreate
		f.raceOnCreate = nil
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return ErrEmailExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error) {
	user, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email, ok := updates["email"].(string); ok {
		delete(f.byEmail, user.Email)
		user.Email = email
		f.byEmail[email] = user
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = &name
	}
	return user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, user := range f.byEmail {
		if user.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

func TestFindOrCreateReturnsExistingUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	first, err := svc.FindOrCreate(context.Background(), "a@example.com", "Alice")
	require.NoError(t, err)

	second, err := svc.FindOrCreate(context.Background(), "a@example.com", "Alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestFindOrCreateFirstSignInCreatesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.FindOrCreate(context.Background(), "a@example.com", "Alice")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@example.com", user.Email)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Alice", *user.Name)
	assert.Empty(t, user.Password, "provider accounts carry no password hash")
}

func TestFindOrCreateEmptyNameStaysNil(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.FindOrCreate(context.Background(), "a@example.com", "")
	require.NoError(t, err)
	assert.Nil(t, user.Name)
}

func TestFindOrCreateLosingInsertRaceReturnsWinner(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	winner := &User{ID: uuid.New(), Email: "a@example.com"}
	repo.raceOnCreate = winner

	user, err := svc.FindOrCreate(context.Background(), "a@example.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, user.ID, "loser re-reads the row the winner created")
}
