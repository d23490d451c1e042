package services_test

import (
	"testing"

	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductBlockedByOrderItem(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = services.NewCheckoutService(db).Checkout(cart.ID, user.ID)
	require.NoError(t, err)

	err = services.DeleteProduct(db, product.ID)
	assert.ErrorIs(t, err, services.ErrProductInUse)

	// the product stays in the catalog
	var still models.Product
	assert.NoError(t, db.First(&still, product.ID).Error)
}

func TestDeleteProductWithoutReferences(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")

	require.NoError(t, services.DeleteProduct(db, product.ID))

	err := services.DeleteProduct(db, product.ID)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestDeleteCollectionBlockedByProducts(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")

	err := services.DeleteCollection(db, collection.ID)
	assert.ErrorIs(t, err, services.ErrCollectionInUse)

	// reassign the product, then deletion succeeds
	other := seedCollection(t, db, "Clearance")
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("collection_id", other.ID).Error)
	assert.NoError(t, services.DeleteCollection(db, collection.ID))
}
