package wishlists

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrWishlistNotFound covers both a genuinely missing list and a list
// owned by someone else; callers cannot tell the two apart
var ErrWishlistNotFound = errors.New("wishlist not found")

type Repository interface {
	Create(ctx context.Context, wishlist *Wishlist) error
	GetOwned(ctx context.Context, userID uuid.UUID, wishlistID uint) (*Wishlist, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Wishlist, error)
	Update(ctx context.Context, userID uuid.UUID, wishlistID uint, updates map[string]interface{}) (*Wishlist, error)
	Delete(ctx context.Context, userID uuid.UUID, wishlistID uint) error

	AddItem(ctx context.Context, wishlistID uint, giftID uint) error
	RemoveItem(ctx context.Context, wishlistID uint, giftID uint) error
	ListItems(ctx context.Context, wishlistID uint) ([]WishlistItem, error)
	CountItems(ctx context.Context, wishlistIDs []uint) (map[uint]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, wishlist *Wishlist) error {
	return r.db.WithContext(ctx).Create(wishlist).Error
}

// GetOwned fetches a wishlist only when userID owns it
func (r *repository) GetOwned(ctx context.Context, userID uuid.UUID, wishlistID uint) (*Wishlist, error) {
	var wishlist Wishlist
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", wishlistID, userID).
		First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWishlistNotFound
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]Wishlist, error) {
	var wishlists []Wishlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&wishlists).Error
	return wishlists, err
}

func (r *repository) Update(ctx context.Context, userID uuid.UUID, wishlistID uint, updates map[string]interface{}) (*Wishlist, error) {
	wishlist, err := r.GetOwned(ctx, userID, wishlistID)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(wishlist).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.GetOwned(ctx, userID, wishlistID)
}

func (r *repository) Delete(ctx context.Context, userID uuid.UUID, wishlistID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", wishlistID, userID).
		Delete(&Wishlist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWishlistNotFound
	}
	return nil
}

// AddItem links a gift into the list; a duplicate add leaves the
// existing row untouched
func (r *repository) AddItem(ctx context.Context, wishlistID uint, giftID uint) error {
	item := WishlistItem{WishlistID: wishlistID, GiftID: giftID}
	err := r.db.WithContext(ctx).Create(&item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RemoveItem unlinks a gift; removing an absent item is a silent no-op
func (r *repository) RemoveItem(ctx context.Context, wishlistID uint, giftID uint) error {
	return r.db.WithContext(ctx).
		Where("wishlist_id = ? AND gift_id = ?", wishlistID, giftID).
		Delete(&WishlistItem{}).Error
}

func (r *repository) ListItems(ctx context.Context, wishlistID uint) ([]WishlistItem, error) {
	var items []WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Gift").
		Where("wishlist_id = ?", wishlistID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// CountItems aggregates item counts for a batch of lists in one query
func (r *repository) CountItems(ctx context.Context, wishlistIDs []uint) (map[uint]int, error) {
	result := make(map[uint]int)
	if len(wishlistIDs) == 0 {
		return result, nil
	}

	type row struct {
		WishlistID uint  `gorm:"column:wishlist_id"`
		Count      int64 `gorm:"column:count"`
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&WishlistItem{}).
		Select("wishlist_id, COUNT(*) AS count").
		Where("wishlist_id IN ?", wishlistIDs).
		Group("wishlist_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.WishlistID] = int(row.Count)
	}
	return result, nil
}
