package wishlists

import (
	"context"

	"github.com/google/uuid"

	"giftly/internal/gifts"
	"giftly/internal/tags"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateWishlistRequest) (*WishlistResponse, error)
	Get(ctx context.Context, userID uuid.UUID, wishlistID uint) (*WishlistDetailResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]WishlistResponse, error)
	Update(ctx context.Context, userID uuid.UUID, wishlistID uint, req UpdateWishlistRequest) (*WishlistResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, wishlistID uint) error

	AddItem(ctx context.Context, userID uuid.UUID, wishlistID uint, slug string) error
	RemoveItem(ctx context.Context, userID uuid.UUID, wishlistID uint, slug string) error
}

type service struct {
	repo      Repository
	giftsRepo gifts.Repository
	tagsRepo  tags.Repository
}

func NewService(repo Repository, giftsRepo gifts.Repository, tagsRepo tags.Repository) Service {
	return &service{
		repo:      repo,
		giftsRepo: giftsRepo,
		tagsRepo:  tagsRepo,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateWishlistRequest) (*WishlistResponse, error) {
	wishlist := &Wishlist{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, wishlist); err != nil {
		return nil, err
	}

	response := wishlist.toResponse(0)
	return &response, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, wishlistID uint) (*WishlistDetailResponse, error) {
	wishlist, err := s.repo.GetOwned(ctx, userID, wishlistID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, wishlist.ID)
	if err != nil {
		return nil, err
	}

	giftIDs := make([]uint, len(items))
	for i, item := range items {
		giftIDs[i] = item.GiftID
	}
	namesByGift, err := s.tagsRepo.GetNamesByGiftIDs(ctx, giftIDs)
	if err != nil {
		return nil, err
	}

	giftResponses := make([]gifts.GiftResponse, len(items))
	for i, item := range items {
		giftResponses[i] = item.Gift.ToResponse(namesByGift[item.GiftID])
	}

	description := ""
	if wishlist.Description != nil {
		description = *wishlist.Description
	}
	return &WishlistDetailResponse{
		ID:          wishlist.ID,
		Name:        wishlist.Name,
		Description: description,
		Gifts:       giftResponses,
		CreatedAt:   wishlist.CreatedAt,
		UpdatedAt:   wishlist.UpdatedAt,
	}, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]WishlistResponse, error) {
	wishlists, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	wishlistIDs := make([]uint, len(wishlists))
	for i, wishlist := range wishlists {
		wishlistIDs[i] = wishlist.ID
	}
	counts, err := s.repo.CountItems(ctx, wishlistIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]WishlistResponse, len(wishlists))
	for i, wishlist := range wishlists {
		responses[i] = wishlist.toResponse(counts[wishlist.ID])
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, wishlistID uint, req UpdateWishlistRequest) (*WishlistResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	wishlist, err := s.repo.Update(ctx, userID, wishlistID, updates)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountItems(ctx, []uint{wishlist.ID})
	if err != nil {
		return nil, err
	}

	response := wishlist.toResponse(counts[wishlist.ID])
	return &response, nil
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, wishlistID uint) error {
	return s.repo.Delete(ctx, userID, wishlistID)
}

// AddItem links the gift identified by slug into an owned wishlist.
// The ownership check runs before the gift lookup, so probing another
// user's list ids reveals nothing about the catalog either.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, wishlistID uint, slug string) error {
	wishlist, err := s.repo.GetOwned(ctx, userID, wishlistID)
	if err != nil {
		return err
	}

	gift, err := s.giftsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	return s.repo.AddItem(ctx, wishlist.ID, gift.ID)
}

func (s *service) RemoveItem(ctx context.Context, userID uuid.UUID, wishlistID uint, slug string) error {
	wishlist, err := s.repo.GetOwned(ctx, userID, wishlistID)
	if err != nil {
		return err
	}

	gift, err := s.giftsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	return s.repo.RemoveItem(ctx, wishlist.ID, gift.ID)
}
