package bookmarks

import (
	"context"

	"github.com/google/uuid"

	"giftly/internal/gifts"
	"giftly/internal/tags"
)

// Publisher emits bookmark change events for downstream consumers
type Publisher interface {
	PublishBookmarkAdded(ctx context.Context, userID, slug string) error
	PublishBookmarkRemoved(ctx context.Context, userID, slug string) error
}

type Service interface {
	Add(ctx context.Context, userID uuid.UUID, slug string) error
	Remove(ctx context.Context, userID uuid.UUID, slug string) error
	IsBookmarked(ctx context.Context, userID uuid.UUID, slug string) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]BookmarkResponse, error)
	SetPublisher(publisher Publisher)
}

type service struct {
	repo      Repository
	giftsRepo gifts.Repository
	tagsRepo  tags.Repository
	publisher Publisher
}

func NewService(repo Repository, giftsRepo gifts.Repository, tagsRepo tags.Repository) Service {
	return &service{
		repo:      repo,
		giftsRepo: giftsRepo,
		tagsRepo:  tagsRepo,
	}
}

// SetPublisher injects the bookmark event publisher
func (s *service) SetPublisher(publisher Publisher) {
	s.publisher = publisher
}

// Add bookmarks the gift identified by slug. Adding an existing
// bookmark succeeds without changing anything.
func (s *service) Add(ctx context.Context, userID uuid.UUID, slug string) error {
	gift, err := s.giftsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.repo.Add(ctx, userID, gift.ID); err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishBookmarkAdded(ctx, userID.String(), slug)
	}
	return nil
}

// Remove deletes the bookmark; a missing bookmark is not an error
func (s *service) Remove(ctx context.Context, userID uuid.UUID, slug string) error {
	gift, err := s.giftsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, userID, gift.ID); err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishBookmarkRemoved(ctx, userID.String(), slug)
	}
	return nil
}

func (s *service) IsBookmarked(ctx context.Context, userID uuid.UUID, slug string) (bool, error) {
	gift, err := s.giftsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, userID, gift.ID)
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]BookmarkResponse, error) {
	bookmarks, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	giftIDs := make([]uint, len(bookmarks))
	for i, bookmark := range bookmarks {
		giftIDs[i] = bookmark.GiftID
	}

	namesByGift, err := s.tagsRepo.GetNamesByGiftIDs(ctx, giftIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]BookmarkResponse, len(bookmarks))
	for i, bookmark := range bookmarks {
		responses[i] = BookmarkResponse{
			Gift:      bookmark.Gift.ToResponse(namesByGift[bookmark.GiftID]),
			CreatedAt: bookmark.CreatedAt,
		}
	}
	return responses, nil
}
