package gifts

import (
	"context"
	"errors"
	"fmt"

	"giftly/internal/shared/constants"
	"giftly/internal/tags"
	"giftly/pkg/cache"
)

var ErrInvalidPriceRange = errors.New("price range min must be non-negative and not exceed max")

type Service interface {
	ListVisible(ctx context.Context) ([]GiftResponse, error)
	ListByCategory(ctx context.Context, category string) ([]GiftResponse, error)
	ListAll(ctx context.Context) ([]GiftResponse, error)
	GetBySlug(ctx context.Context, slug string) (*GiftResponse, error)
	Upsert(ctx context.Context, req UpsertGiftRequest) (*GiftResponse, error)
	Delete(ctx context.Context, slug string) error
	Search(ctx context.Context, params SearchParams) ([]GiftResponse, error)
	SetCacheService(cacheService cache.Service)
	SetPublisher(publisher Publisher)
}

// Publisher emits catalog change events; nil-safe by construction so
// the store works without a broker
type Publisher interface {
	PublishGiftUpserted(ctx context.Context, slug string) error
}

type service struct {
	repo         Repository
	tagsRepo     tags.Repository
	cacheService cache.Service
	publisher    Publisher
}

func NewService(repo Repository, tagsRepo tags.Repository) Service {
	return &service{
		repo:     repo,
		tagsRepo: tagsRepo,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetPublisher injects the catalog event publisher
func (s *service) SetPublisher(publisher Publisher) {
	s.publisher = publisher
}

func (s *service) ListVisible(ctx context.Context) ([]GiftResponse, error) {
	if s.cacheService != nil {
		var cached []GiftResponse
		if err := s.cacheService.Get(ctx, constants.CACHE_GIFTS_VISIBLE, &cached); err == nil {
			return cached, nil
		}
	}

	gifts, err := s.repo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	responses, err := s.denormalize(ctx, gifts)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		// Best effort; a cold cache just means the next read hits postgres
		_ = s.cacheService.Set(ctx, constants.CACHE_GIFTS_VISIBLE, responses, constants.TTL_GIFT_LIST)
	}

	return responses, nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]GiftResponse, error) {
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	cacheKey := constants.CACHE_GIFTS_CATEGORY + category
	if s.cacheService != nil {
		var cached []GiftResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	gifts, err := s.repo.ListByCategory(ctx, GiftCategory(category))
	if err != nil {
		return nil, err
	}

	responses, err := s.denormalize(ctx, gifts)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, responses, constants.TTL_GIFT_LIST)
	}

	return responses, nil
}

func (s *service) ListAll(ctx context.Context) ([]GiftResponse, error) {
	gifts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.denormalize(ctx, gifts)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*GiftResponse, error) {
	cacheKey := constants.CACHE_GIFT_DETAIL + slug
	if s.cacheService != nil {
		var cached GiftResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	gift, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	tagNames, err := s.tagsRepo.GetNamesByGiftID(ctx, gift.ID)
	if err != nil {
		return nil, err
	}

	response := gift.ToResponse(tagNames)

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, response, constants.TTL_GIFT_DETAIL)
	}
	return &response, nil
}

func (s *service) Upsert(ctx context.Context, req UpsertGiftRequest) (*GiftResponse, error) {
	if req.PriceRange.Min < 0 || req.PriceRange.Max < req.PriceRange.Min {
		return nil, ErrInvalidPriceRange
	}
	if !IsValidCategory(req.Category) {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}

	if _, err := s.repo.Upsert(ctx, req); err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_GIFTS_ALL)
	}
	if s.publisher != nil {
		_ = s.publisher.PublishGiftUpserted(ctx, req.Slug)
	}

	// Read back through the slug query so the returned tags reflect
	// exactly the reconciled state
	return s.GetBySlug(ctx, req.Slug)
}

func (s *service) Delete(ctx context.Context, slug string) error {
	if err := s.repo.Delete(ctx, slug); err != nil {
		return err
	}

	if s.cacheService != nil {
		_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_GIFTS_ALL)
	}
	return nil
}

func (s *service) Search(ctx context.Context, params SearchParams) ([]GiftResponse, error) {
	allGifts, err := s.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	results := Search(allGifts, params)
	if results == nil {
		results = []GiftResponse{}
	}
	return results, nil
}

// denormalize joins tag names onto each gift in one batched query
func (s *service) denormalize(ctx context.Context, gifts []Gift) ([]GiftResponse, error) {
	giftIDs := make([]uint, len(gifts))
	for i, gift := range gifts {
		giftIDs[i] = gift.ID
	}

	namesByGift, err := s.tagsRepo.GetNamesByGiftIDs(ctx, giftIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]GiftResponse, len(gifts))
	for i, gift := range gifts {
		responses[i] = gift.ToResponse(namesByGift[gift.ID])
	}
	return responses, nil
}
