package services_test

import (
	"errors"
	"testing"

	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCheckoutCreatesOrderAndDeletesCart(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	productA := seedProduct(t, db, collection.ID, "product-a", "10.00")
	productB := seedProduct(t, db, collection.ID, "product-b", "5.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, productA.ID, 2)
	require.NoError(t, err)
	_, err = services.AddCartItem(db, cart.ID, productB.ID, 1)
	require.NoError(t, err)

	svc := services.NewCheckoutService(db)
	order, err := svc.Checkout(cart.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)
	assert.True(t, order.TotalPrice().Equal(decimal.RequireFromString("25.00")),
		"want total 25.00, got %s", order.TotalPrice())

	byProduct := map[uint]models.OrderItem{}
	for _, item := range order.Items {
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, 2, byProduct[productA.ID].Quantity)
	assert.True(t, byProduct[productA.ID].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 1, byProduct[productB.ID].Quantity)
	assert.True(t, byProduct[productB.ID].UnitPrice.Equal(decimal.RequireFromString("5.00")))

	// cart and its items are gone
	var gone models.Cart
	err = db.First(&gone, "id = ?", cart.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	var remaining int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining)
	assert.Zero(t, remaining)

	// checking out the same cart again fails
	_, err = svc.Checkout(cart.ID, user.ID)
	assert.ErrorIs(t, err, services.ErrCartNotFound)
}

func TestCheckoutUnknownCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")

	svc := services.NewCheckoutService(db)
	_, err := svc.Checkout("no-such-cart", user.ID)
	assert.ErrorIs(t, err, services.ErrCartNotFound)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	svc := services.NewCheckoutService(db)
	_, err := svc.Checkout(cart.ID, user.ID)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)

	// the cart survives a failed checkout
	var still models.Cart
	assert.NoError(t, db.First(&still, "id = ?", cart.ID).Error)
}

func TestCheckoutCartEmptiedMidTransaction(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, product.ID, 1)
	require.NoError(t, err)

	// Drain the cart just before the order row is inserted, after the
	// non-empty precondition has already passed.
	drained := false
	err = db.Callback().Create().Before("gorm:create").Register("drain_cart", func(tx *gorm.DB) {
		if drained || tx.Statement.Schema == nil || tx.Statement.Schema.Name != "Order" {
			return
		}
		drained = true
		tx.Session(&gorm.Session{NewDB: true}).Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
	})
	require.NoError(t, err)

	svc := services.NewCheckoutService(db)
	_, err = svc.Checkout(cart.ID, user.ID)
	require.True(t, drained)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	// the transaction rolled back without an order
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
	var still models.Cart
	assert.NoError(t, db.First(&still, "id = ?", cart.ID).Error)
}

func TestCheckoutSnapshotsUnitPrice(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, product.ID, 1)
	require.NoError(t, err)

	svc := services.NewCheckoutService(db)
	order, err := svc.Checkout(cart.ID, user.ID)
	require.NoError(t, err)

	// raise the live price after checkout
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("unit_price", decimal.RequireFromString("99.99")).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("10.00")),
		"order item price must stay at the checkout-time price, got %s", item.UnitPrice)
}

func TestCheckoutMissingProductRollsBack(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, product.ID, 1)
	require.NoError(t, err)

	// the product disappears between adding to cart and checking out
	require.NoError(t, db.Unscoped().Delete(&models.Product{}, product.ID).Error)

	svc := services.NewCheckoutService(db)
	_, err = svc.Checkout(cart.ID, user.ID)
	assert.ErrorIs(t, err, services.ErrProductConflict)

	// nothing committed: no order, cart untouched
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
	var still models.Cart
	assert.NoError(t, db.First(&still, "id = ?", cart.ID).Error)
	var items int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&items)
	assert.EqualValues(t, 1, items)
}

func TestCheckoutProvisionsCustomer(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, product.ID, 1)
	require.NoError(t, err)

	svc := services.NewCheckoutService(db)
	order, err := svc.Checkout(cart.ID, user.ID)
	require.NoError(t, err)

	var customer models.Customer
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&customer).Error)
	assert.Equal(t, customer.ID, order.CustomerID)
}

type failingListener struct {
	called bool
}

func (l *failingListener) HandleOrderCreated(event services.OrderCreated) error {
	l.called = true
	return errors.New("notification endpoint is down")
}

type panickingListener struct{}

func (l *panickingListener) HandleOrderCreated(event services.OrderCreated) error {
	panic("listener bug")
}

func TestCheckoutListenerFailureDoesNotFailOrder(t *testing.T) {
	db := newTestDB(t)
	collection := seedCollection(t, db, "Gadgets")
	product := seedProduct(t, db, collection.ID, "product-a", "10.00")
	user := seedUser(t, db, "buyer@example.com")
	cart := seedCart(t, db)

	_, err := services.AddCartItem(db, cart.ID, product.ID, 1)
	require.NoError(t, err)

	failing := &failingListener{}
	svc := services.NewCheckoutService(db, failing, &panickingListener{})
	order, err := svc.Checkout(cart.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, failing.called)

	var persisted models.Order
	assert.NoError(t, db.First(&persisted, order.ID).Error)
}
