package services_test

import (
	"testing"

	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTag(t *testing.T, db *gorm.DB, label string) models.Tag {
	t.Helper()
	tag := models.Tag{Label: label}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func TestAttachTagIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	tag := seedTag(t, db, "new-arrival")

	first, err := services.AttachTag(db, tag.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	second, err := services.AttachTag(db, tag.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var rows int64
	db.Model(&models.TaggedItem{}).Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestAttachTagValidation(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	tag := seedTag(t, db, "new-arrival")

	_, err := services.AttachTag(db, 9999, models.EntityKindProduct, product.ID)
	assert.ErrorIs(t, err, services.ErrTagNotFound)

	_, err = services.AttachTag(db, tag.ID, models.EntityKind("gizmo"), product.ID)
	assert.ErrorIs(t, err, services.ErrInvalidEntityKind)
}

func TestDetachTag(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	tag := seedTag(t, db, "new-arrival")

	_, err := services.AttachTag(db, tag.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)

	require.NoError(t, services.DetachTag(db, tag.ID, models.EntityKindProduct, product.ID))

	err = services.DetachTag(db, tag.ID, models.EntityKindProduct, product.ID)
	assert.ErrorIs(t, err, services.ErrTagNotFound)
}

func TestDetachThenReattachTag(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	tag := seedTag(t, db, "new-arrival")

	_, err := services.AttachTag(db, tag.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	require.NoError(t, services.DetachTag(db, tag.ID, models.EntityKindProduct, product.ID))

	// re-attaching must not trip the (tag, kind, entity) unique index
	_, err = services.AttachTag(db, tag.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)

	items, err := services.TagsFor(db, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTagsForEntity(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	sale := seedTag(t, db, "sale")
	featured := seedTag(t, db, "featured")

	_, err := services.AttachTag(db, sale.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	_, err = services.AttachTag(db, featured.ID, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	// a tag on another entity kind with the same id must not leak in
	_, err = services.AttachTag(db, sale.ID, models.EntityKindCollection, product.ID)
	require.NoError(t, err)

	items, err := services.TagsFor(db, models.EntityKindProduct, product.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	labels := []string{items[0].Tag.Label, items[1].Tag.Label}
	assert.ElementsMatch(t, []string{"sale", "featured"}, labels)
}
