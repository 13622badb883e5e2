package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the cascade-delete foreign keys AutoMigrate
// does not express for composite-key association tables
func MigrateConstraints(db *gorm.DB) error {
	stmts := []string{
		`ALTER TABLE gift_tags
		 DROP CONSTRAINT IF EXISTS fk_gift_tags_gift,
		 ADD CONSTRAINT fk_gift_tags_gift
		 FOREIGN KEY (gift_id) REFERENCES gifts(id) ON DELETE CASCADE;`,
		`ALTER TABLE gift_tags
		 DROP CONSTRAINT IF EXISTS fk_gift_tags_tag,
		 ADD CONSTRAINT fk_gift_tags_tag
		 FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE;`,
		`ALTER TABLE bookmarks
		 DROP CONSTRAINT IF EXISTS fk_bookmarks_user,
		 ADD CONSTRAINT fk_bookmarks_user
		 FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
		`ALTER TABLE bookmarks
		 DROP CONSTRAINT IF EXISTS fk_bookmarks_gift,
		 ADD CONSTRAINT fk_bookmarks_gift
		 FOREIGN KEY (gift_id) REFERENCES gifts(id) ON DELETE CASCADE;`,
		`ALTER TABLE wishlists
		 DROP CONSTRAINT IF EXISTS fk_wishlists_user,
		 ADD CONSTRAINT fk_wishlists_user
		 FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
		`ALTER TABLE wishlist_items
		 DROP CONSTRAINT IF EXISTS fk_wishlist_items_wishlist,
		 ADD CONSTRAINT fk_wishlist_items_wishlist
		 FOREIGN KEY (wishlist_id) REFERENCES wishlists(id) ON DELETE CASCADE;`,
		`ALTER TABLE wishlist_items
		 DROP CONSTRAINT IF EXISTS fk_wishlist_items_gift,
		 ADD CONSTRAINT fk_wishlist_items_gift
		 FOREIGN KEY (gift_id) REFERENCES gifts(id) ON DELETE CASCADE;`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
