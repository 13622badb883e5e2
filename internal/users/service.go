package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindOrCreate(ctx context.Context, email string, name string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	user := &User{
		ID:    uuid.New(),
		Email: req.Email,
		Name:  req.Name,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error) {
	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// FindOrCreate returns the user matching email, creating one on first
// sign-in. The unique email index is the real guard against concurrent
// first sign-ins: when the insert loses the race it re-reads the row
// the winner created instead of failing.
func (s *service) FindOrCreate(ctx context.Context, email string, name string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	created := &User{
		ID:    uuid.New(),
		Email: email,
	}
	if name != "" {
		created.Name = &name
	}

	err = s.repo.Create(ctx, created)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, ErrEmailExists) {
		return s.repo.GetByEmail(ctx, email)
	}
	return nil, err
}
