package tags

import (
	"time"
)

// Tag is a normalized tag shared across gifts. Tags are created lazily
// on first use and never deleted, even when no gift references them.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// GiftTag is the many-to-many association between gifts and tags
type GiftTag struct {
	GiftID    uint      `json:"gift_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Tag) TableName() string {
	return "tags"
}

func (GiftTag) TableName() string {
	return "gift_tags"
}
