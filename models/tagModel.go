package models

import (
	"time"

	"gorm.io/gorm"
)

// EntityKind names the kinds of rows a tag can be attached to. Keeping the
// kind explicit means no runtime type resolution when tags are looked up.
type EntityKind string

const (
	EntityKindProduct    EntityKind = "product"
	EntityKindCollection EntityKind = "collection"
	EntityKindOrder      EntityKind = "order"
	EntityKindCustomer   EntityKind = "customer"
)

func (k EntityKind) Valid() bool {
	switch k {
	case EntityKindProduct, EntityKindCollection, EntityKindOrder, EntityKindCustomer:
		return true
	}
	return false
}

type Tag struct {
	gorm.Model
	Label string `gorm:"uniqueIndex" json:"label" binding:"required"`
}

// TaggedItem deletes are hard deletes, so detaching frees the
// (tag_id, entity_kind, entity_id) unique index for a later re-attach.
type TaggedItem struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TagID      uint       `gorm:"uniqueIndex:idx_tag_entity" json:"tagId"`
	Tag        Tag        `json:"tag"`
	EntityKind EntityKind `gorm:"type:VARCHAR(20);uniqueIndex:idx_tag_entity" json:"entityKind"`
	EntityID   uint       `gorm:"uniqueIndex:idx_tag_entity" json:"entityId"`
	CreatedAt  time.Time  `json:"createdAt"`
}
