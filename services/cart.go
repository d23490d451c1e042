package services

import (
	"errors"

	"github.com/Makena/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("no product with given id was found")
	ErrCartItemNotFound = errors.New("no cart item with given id was found")
)

// AddCartItem adds a product to a cart. If the cart already holds the
// product, the quantities are summed instead of creating a second row.
func AddCartItem(db *gorm.DB, cartID string, productID uint, quantity int) (*models.CartItem, error) {
	var cart models.Cart
	if err := db.First(&cart, "id = ?", cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err == nil {
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
		item.Product = product
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	item.Product = product
	return &item, nil
}

// UpdateCartItem replaces the quantity of an existing cart item.
func UpdateCartItem(db *gorm.DB, cartID string, itemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.Preload("Product").Where("cart_id = ?", cartID).First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if err := db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return &item, nil
}

// RemoveCartItem deletes one item from a cart.
func RemoveCartItem(db *gorm.DB, cartID string, itemID uint) error {
	result := db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
