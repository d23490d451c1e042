package services_test

import (
	"testing"

	"github.com/Makena/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Address{},
		&models.Collection{},
		&models.Promotion{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Tag{},
		&models.TaggedItem{},
	)
	require.NoError(t, err)
	return db
}

func seedCollection(t *testing.T, db *gorm.DB, title string) models.Collection {
	t.Helper()
	collection := models.Collection{Title: title}
	require.NoError(t, db.Create(&collection).Error)
	return collection
}

func seedProduct(t *testing.T, db *gorm.DB, collectionID uint, title, price string) models.Product {
	t.Helper()
	product := models.Product{
		Title:        title,
		Slug:         title,
		UnitPrice:    decimal.RequireFromString(price),
		Inventory:    100,
		CollectionID: collectionID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Username:  email,
		Email:     email,
		Password:  "hashed",
		Role:      "customer",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCart(t *testing.T, db *gorm.DB) models.Cart {
	t.Helper()
	cart := models.Cart{}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}
