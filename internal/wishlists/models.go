package wishlists

import (
	"time"

	"github.com/google/uuid"

	"giftly/internal/gifts"
)

// Wishlist is a named, user-owned collection of gifts. Every query and
// mutation is scoped by owner; one user's lists are invisible to
// another.
type Wishlist struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Wishlist) TableName() string {
	return "wishlists"
}

// WishlistItem links a gift into a wishlist. The composite key makes
// adding the same gift twice a no-op at the storage level.
type WishlistItem struct {
	WishlistID uint       `json:"wishlist_id" gorm:"primaryKey;autoIncrement:false"`
	GiftID     uint       `json:"gift_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	Gift       gifts.Gift `json:"-" gorm:"foreignKey:GiftID"`
}

// TableName specifies the table name for GORM
func (WishlistItem) TableName() string {
	return "wishlist_items"
}

type WishlistResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WishlistDetailResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Gifts       []gifts.GiftResponse `json:"gifts"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (w *Wishlist) toResponse(itemCount int) WishlistResponse {
	description := ""
	if w.Description != nil {
		description = *w.Description
	}
	return WishlistResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: description,
		ItemCount:   itemCount,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

type CreateWishlistRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

type UpdateWishlistRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}
