package tags

import (
	"context"
)

type Service interface {
	GetAll(ctx context.Context) ([]TagResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = TagResponse{
			ID:   tag.ID,
			Name: tag.Name,
		}
	}
	return responses, nil
}
