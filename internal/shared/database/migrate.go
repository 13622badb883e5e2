package database

import (
	"giftly/internal/bookmarks"
	"giftly/internal/gifts"
	"giftly/internal/tags"
	"giftly/internal/users"
	"giftly/internal/wishlists"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&gifts.Gift{},
		&tags.Tag{},
		&tags.GiftTag{},
		&bookmarks.Bookmark{},
		&wishlists.Wishlist{},
		&wishlists.WishlistItem{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
