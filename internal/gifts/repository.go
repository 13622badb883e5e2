package gifts

import (
	"context"
	"errors"
	"fmt"

	"giftly/internal/tags"

	"gorm.io/gorm"
)

var ErrGiftNotFound = errors.New("gift not found")

type Repository interface {
	ListVisible(ctx context.Context) ([]Gift, error)
	ListByCategory(ctx context.Context, category GiftCategory) ([]Gift, error)
	ListAll(ctx context.Context) ([]Gift, error)
	GetBySlug(ctx context.Context, slug string) (*Gift, error)
	Upsert(ctx context.Context, input UpsertGiftRequest) (*Gift, error)
	Delete(ctx context.Context, slug string) error
}

type repository struct {
	db       *gorm.DB
	tagsRepo tags.Repository
}

func NewRepository(db *gorm.DB, tagsRepo tags.Repository) Repository {
	return &repository{db: db, tagsRepo: tagsRepo}
}

func (r *repository) ListVisible(ctx context.Context) ([]Gift, error) {
	var gifts []Gift
	err := r.db.WithContext(ctx).
		Where("is_hidden = ?", false).
		Order("id ASC").
		Find(&gifts).Error
	return gifts, err
}

func (r *repository) ListByCategory(ctx context.Context, category GiftCategory) ([]Gift, error) {
	var gifts []Gift
	err := r.db.WithContext(ctx).
		Where("is_hidden = ? AND category = ?", false, category).
		Order("id ASC").
		Find(&gifts).Error
	return gifts, err
}

func (r *repository) ListAll(ctx context.Context) ([]Gift, error) {
	var gifts []Gift
	err := r.db.WithContext(ctx).Order("id ASC").Find(&gifts).Error
	return gifts, err
}

// GetBySlug returns a gift regardless of hidden status
func (r *repository) GetBySlug(ctx context.Context, slug string) (*Gift, error) {
	var gift Gift
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&gift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, err
	}
	return &gift, nil
}

// Upsert inserts or updates the gift row keyed by slug and reconciles
// its tag associations. The tag find-or-create, the row write and the
// association diff all commit or roll back as one transaction, so a
// concurrent reader never observes a half-reconciled tag set
func (r *repository) Upsert(ctx context.Context, input UpsertGiftRequest) (*Gift, error) {
	var gift Gift

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tagMap, err := r.tagsRepo.EnsureByNames(tx, input.Tags)
		if err != nil {
			return fmt.Errorf("failed to ensure tags: %w", err)
		}

		err = tx.Where("slug = ?", input.Slug).First(&gift).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			gift = Gift{
				Slug:        input.Slug,
				Name:        input.Name,
				Description: input.Description,
				MinPrice:    input.PriceRange.Min,
				MaxPrice:    input.PriceRange.Max,
				Link:        input.Link,
				IsHidden:    input.IsHidden,
				Category:    GiftCategory(input.Category),
			}
			if err := tx.Create(&gift).Error; err != nil {
				return fmt.Errorf("failed to create gift: %w", err)
			}
		case err != nil:
			return err
		default:
			updates := map[string]interface{}{
				"name":        input.Name,
				"description": input.Description,
				"min_price":   input.PriceRange.Min,
				"max_price":   input.PriceRange.Max,
				"link":        input.Link,
				"is_hidden":   input.IsHidden,
				"category":    GiftCategory(input.Category),
			}
			if err := tx.Model(&gift).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update gift: %w", err)
			}
		}

		desiredTagIDs := make([]uint, 0, len(tagMap))
		for _, tagID := range tagMap {
			desiredTagIDs = append(desiredTagIDs, tagID)
		}

		if err := r.tagsRepo.ReconcileGiftTags(tx, gift.ID, desiredTagIDs); err != nil {
			return fmt.Errorf("failed to reconcile gift tags: %w", err)
		}

		// Read back inside the transaction so the returned row carries
		// the timestamps the write produced
		return tx.Where("slug = ?", input.Slug).First(&gift).Error
	})
	if err != nil {
		return nil, err
	}

	return &gift, nil
}

// Delete removes a gift; association rows cascade at the database level
func (r *repository) Delete(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&Gift{}).Error
}
