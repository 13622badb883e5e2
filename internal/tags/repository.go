package tags

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	// Tag lookups
	GetAll(ctx context.Context) ([]Tag, error)
	GetByNames(ctx context.Context, names []string) ([]Tag, error)
	GetNamesByGiftID(ctx context.Context, giftID uint) ([]string, error)
	GetNamesByGiftIDs(ctx context.Context, giftIDs []uint) (map[uint][]string, error)

	// Transactional helpers used inside the gift upsert; they run on the
	// caller's transaction handle so the whole reconcile commits or
	// rolls back as one unit
	EnsureByNames(tx *gorm.DB, names []string) (map[string]uint, error)
	ReconcileGiftTags(tx *gorm.DB, giftID uint, desiredTagIDs []uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *repository) GetByNames(ctx context.Context, names []string) ([]Tag, error) {
	var tags []Tag
	if len(names) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&tags).Error
	return tags, err
}

func (r *repository) GetNamesByGiftID(ctx context.Context, giftID uint) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).Table("tags").
		Joins("JOIN gift_tags ON tags.id = gift_tags.tag_id").
		Where("gift_tags.gift_id = ?", giftID).
		Order("tags.name ASC").
		Pluck("tags.name", &names).Error
	return names, err
}

// GetNamesByGiftIDs aggregates tag names for a batch of gifts in one
// query. Gifts without tags are simply absent from the map; callers
// substitute an empty slice, never nil
func (r *repository) GetNamesByGiftIDs(ctx context.Context, giftIDs []uint) (map[uint][]string, error) {
	result := make(map[uint][]string)
	if len(giftIDs) == 0 {
		return result, nil
	}

	type row struct {
		GiftID uint   `gorm:"column:gift_id"`
		Name   string `gorm:"column:name"`
	}

	var rows []row
	err := r.db.WithContext(ctx).Table("tags").
		Select("gift_tags.gift_id, tags.name").
		Joins("JOIN gift_tags ON tags.id = gift_tags.tag_id").
		Where("gift_tags.gift_id IN ?", giftIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.GiftID] = append(result[row.GiftID], row.Name)
	}
	return result, nil
}

// EnsureByNames finds or creates a tag per name and returns a name→id
// map. A concurrent insert of the same name is absorbed by re-reading
// after the duplicate-key error
func (r *repository) EnsureByNames(tx *gorm.DB, names []string) (map[string]uint, error) {
	tagMap := make(map[string]uint, len(names))

	for _, name := range dedupeNames(names) {
		var tag Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if err == nil {
			tagMap[name] = tag.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		tag = Tag{Name: name}
		if err := tx.Create(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		tagMap[name] = tag.ID
	}

	return tagMap, nil
}

// ReconcileGiftTags brings the gift's association rows to exactly
// desiredTagIDs: stale rows are deleted, missing rows inserted, and
// rows present on both sides are left untouched
func (r *repository) ReconcileGiftTags(tx *gorm.DB, giftID uint, desiredTagIDs []uint) error {
	var currentTagIDs []uint
	err := tx.Model(&GiftTag{}).
		Where("gift_id = ?", giftID).
		Pluck("tag_id", &currentTagIDs).Error
	if err != nil {
		return err
	}

	toAdd, toRemove := DiffTagIDs(currentTagIDs, desiredTagIDs)

	if len(toRemove) > 0 {
		if err := tx.Where("gift_id = ? AND tag_id IN ?", giftID, toRemove).
			Delete(&GiftTag{}).Error; err != nil {
			return err
		}
	}

	for _, tagID := range toAdd {
		if err := tx.Create(&GiftTag{GiftID: giftID, TagID: tagID}).Error; err != nil {
			return err
		}
	}

	return nil
}

// DiffTagIDs computes the association set difference for a reconcile:
// ids desired but not current, and ids current but no longer desired
func DiffTagIDs(current, desired []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}

	desiredSet := make(map[uint]bool, len(desired))
	for _, id := range desired {
		if desiredSet[id] {
			continue
		}
		desiredSet[id] = true
		if !currentSet[id] {
			toAdd = append(toAdd, id)
		}
	}

	for _, id := range current {
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}

	return toAdd, toRemove
}

func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var result []string
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		result = append(result, trimmed)
	}
	return result
}
