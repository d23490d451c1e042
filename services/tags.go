package services

import (
	"errors"

	"github.com/Makena/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound       = errors.New("no tag with given id was found")
	ErrInvalidEntityKind = errors.New("unknown entity kind")
)

// AttachTag links a tag to an entity. Attaching the same tag to the same
// entity twice is a no-op.
func AttachTag(db *gorm.DB, tagID uint, kind models.EntityKind, entityID uint) (*models.TaggedItem, error) {
	if !kind.Valid() {
		return nil, ErrInvalidEntityKind
	}

	var tag models.Tag
	if err := db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	item := models.TaggedItem{TagID: tagID, EntityKind: kind, EntityID: entityID}
	if err := db.Where(models.TaggedItem{TagID: tagID, EntityKind: kind, EntityID: entityID}).
		FirstOrCreate(&item).Error; err != nil {
		return nil, err
	}
	item.Tag = tag
	return &item, nil
}

// DetachTag removes the link between a tag and an entity.
func DetachTag(db *gorm.DB, tagID uint, kind models.EntityKind, entityID uint) error {
	if !kind.Valid() {
		return ErrInvalidEntityKind
	}
	result := db.Where("tag_id = ? AND entity_kind = ? AND entity_id = ?", tagID, kind, entityID).
		Delete(&models.TaggedItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}

// TagsFor lists all tags attached to one entity.
func TagsFor(db *gorm.DB, kind models.EntityKind, entityID uint) ([]models.TaggedItem, error) {
	if !kind.Valid() {
		return nil, ErrInvalidEntityKind
	}
	var items []models.TaggedItem
	err := db.Preload("Tag").
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Find(&items).Error
	return items, err
}
