package bookmarks

import (
	"time"

	"github.com/google/uuid"

	"giftly/internal/gifts"
)

// Bookmark marks a gift as saved by a user. Membership is the whole
// payload: the composite key makes a duplicate add structurally
// impossible rather than merely checked.
type Bookmark struct {
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;primaryKey"`
	GiftID    uint       `json:"gift_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	Gift      gifts.Gift `json:"-" gorm:"foreignKey:GiftID"`
}

// TableName specifies the table name for GORM
func (Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkedResponse is the status payload for a single gift
type BookmarkedResponse struct {
	IsBookmarked bool `json:"isBookmarked"`
}

// BookmarkResponse is one saved gift in a user's list
type BookmarkResponse struct {
	Gift      gifts.GiftResponse `json:"gift"`
	CreatedAt time.Time          `json:"created_at"`
}
