package gifts

import (
	"time"
)

type GiftCategory string

const (
	CategoryDonation     GiftCategory = "donation"
	CategorySubscription GiftCategory = "subscription"
	CategoryExperience   GiftCategory = "experience"
	CategoryGiftcard     GiftCategory = "giftcard"
	CategoryOther        GiftCategory = "other"
)

func IsValidCategory(category string) bool {
	switch GiftCategory(category) {
	case CategoryDonation, CategorySubscription, CategoryExperience, CategoryGiftcard, CategoryOther:
		return true
	default:
		return false
	}
}

// Gift is a catalog entry. The slug is the stable external key; the
// numeric id stays internal. Hidden gifts are excluded from default
// listings but remain reachable by slug.
type Gift struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Slug        string       `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	Name        string       `json:"name" gorm:"not null;size:255"`
	Description string       `json:"description" gorm:"type:text;not null"`
	MinPrice    float64      `json:"min_price" gorm:"not null;check:min_price >= 0"`
	MaxPrice    float64      `json:"max_price" gorm:"not null;check:max_price >= min_price"`
	Link        string       `json:"link" gorm:"not null;size:500"`
	IsHidden    bool         `json:"is_hidden" gorm:"not null;default:false"`
	Category    GiftCategory `json:"category" gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Gift) TableName() string {
	return "gifts"
}

type PriceRange struct {
	Min float64 `json:"min" binding:"min=0"`
	Max float64 `json:"max" binding:"min=0"`
}

type GiftResponse struct {
	ID          uint         `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	PriceRange  PriceRange   `json:"price_range"`
	Link        string       `json:"link"`
	IsHidden    bool         `json:"is_hidden"`
	Category    GiftCategory `json:"category"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToResponse denormalizes a gift with its tag names. A gift with zero
// tags gets an empty array, never null
func (g *Gift) ToResponse(tagNames []string) GiftResponse {
	if tagNames == nil {
		tagNames = []string{}
	}

	return GiftResponse{
		ID:          g.ID,
		Slug:        g.Slug,
		Name:        g.Name,
		Description: g.Description,
		PriceRange:  PriceRange{Min: g.MinPrice, Max: g.MaxPrice},
		Link:        g.Link,
		IsHidden:    g.IsHidden,
		Category:    g.Category,
		Tags:        tagNames,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type UpsertGiftRequest struct {
	Slug        string     `json:"slug" binding:"required,min=1,max=255"`
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	PriceRange  PriceRange `json:"price_range" binding:"required"`
	Link        string     `json:"link" binding:"required,url"`
	IsHidden    bool       `json:"is_hidden"`
	Category    string     `json:"category" binding:"required,oneof=donation subscription experience giftcard other"`
	Tags        []string   `json:"tags"`
}
