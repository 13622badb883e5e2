package bookmarks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Add(ctx context.Context, userID uuid.UUID, giftID uint) error
	Remove(ctx context.Context, userID uuid.UUID, giftID uint) error
	Exists(ctx context.Context, userID uuid.UUID, giftID uint) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Add records a bookmark. Adding one that already exists leaves the
// existing row untouched, including its created_at
func (r *repository) Add(ctx context.Context, userID uuid.UUID, giftID uint) error {
	bookmark := Bookmark{UserID: userID, GiftID: giftID}
	err := r.db.WithContext(ctx).Create(&bookmark).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Remove deletes a bookmark; removing one that does not exist is a
// silent no-op
func (r *repository) Remove(ctx context.Context, userID uuid.UUID, giftID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND gift_id = ?", userID, giftID).
		Delete(&Bookmark{}).Error
}

func (r *repository) Exists(ctx context.Context, userID uuid.UUID, giftID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Bookmark{}).
		Where("user_id = ? AND gift_id = ?", userID, giftID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error) {
	var bookmarks []Bookmark
	err := r.db.WithContext(ctx).
		Preload("Gift").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&bookmarks).Error
	return bookmarks, err
}
