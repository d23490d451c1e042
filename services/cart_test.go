package services_test

import (
	"testing"

	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemAggregatesQuantity(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	cart := seedCart(t, db)

	first, err := services.AddCartItem(db, cart.ID, product.ID, 2)
	require.NoError(t, err)
	second, err := services.AddCartItem(db, cart.ID, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "adding the same product twice must reuse the row")
	assert.Equal(t, 5, second.Quantity)

	var rows int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestAddCartItemUnknownCart(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")

	_, err := services.AddCartItem(db, "no-such-cart", product.ID, 1)
	assert.ErrorIs(t, err, services.ErrCartNotFound)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, 9999, 1)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestUpdateCartItemReplacesQuantity(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	cart := seedCart(t, db)

	item, err := services.AddCartItem(db, cart.ID, product.ID, 2)
	require.NoError(t, err)

	updated, err := services.UpdateCartItem(db, cart.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	var stored models.CartItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 7, stored.Quantity)
}

func TestRemoveCartItem(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	cart := seedCart(t, db)

	item, err := services.AddCartItem(db, cart.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, services.RemoveCartItem(db, cart.ID, item.ID))

	err = services.RemoveCartItem(db, cart.ID, item.ID)
	assert.ErrorIs(t, err, services.ErrCartItemNotFound)
}

func TestRemoveThenReAddCartItem(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	cart := seedCart(t, db)

	item, err := services.AddCartItem(db, cart.ID, product.ID, 2)
	require.NoError(t, err)
	require.NoError(t, services.RemoveCartItem(db, cart.ID, item.ID))

	// re-adding the same product must not trip the (cart, product) unique index
	readded, err := services.AddCartItem(db, cart.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, readded.Quantity)

	var rows int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestCartTotalPrice(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	productA := seedProduct(t, db, collection.ID, "product-a", "10.00")
	productB := seedProduct(t, db, collection.ID, "product-b", "5.00")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, productA.ID, 2)
	require.NoError(t, err)
	_, err = services.AddCartItem(db, cart.ID, productB.ID, 1)
	require.NoError(t, err)

	var loaded models.Cart
	require.NoError(t, db.Preload("Items.Product").First(&loaded, "id = ?", cart.ID).Error)
	assert.Equal(t, "25.00", loaded.TotalPrice().StringFixed(2))
}
