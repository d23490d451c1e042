package services

import (
	"errors"

	"github.com/Makena/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrProductInUse    = errors.New("product cannot be deleted because it is associated with an order item")
	ErrCollectionInUse = errors.New("collection cannot be deleted because it is associated with a product")
)

// DeleteProduct removes a product unless an order item references it. Order
// items snapshot prices but still point back at the product row, so the row
// has to outlive every order that mentions it.
func DeleteProduct(db *gorm.DB, productID uint) error {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	var refs int64
	if err := db.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductInUse
	}

	return db.Select("Images", "Reviews").Delete(&product).Error
}

// DeleteCollection removes a collection unless it still owns products.
func DeleteCollection(db *gorm.DB, collectionID uint) error {
	var collection models.Collection
	if err := db.First(&collection, collectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}

	var owned int64
	if err := db.Model(&models.Product{}).Where("collection_id = ?", collectionID).Count(&owned).Error; err != nil {
		return err
	}
	if owned > 0 {
		return ErrCollectionInUse
	}

	return db.Delete(&collection).Error
}
