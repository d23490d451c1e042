package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func cartItemJSON(item models.CartItem) gin.H {
	return gin.H{
		"id": item.ID,
		"product": gin.H{
			"id":        item.Product.ID,
			"title":     item.Product.Title,
			"unitPrice": item.Product.UnitPrice,
		},
		"quantity":   item.Quantity,
		"totalPrice": item.TotalPrice(),
	}
}

func CreateCart(ctx *gin.Context) {
	cart := models.Cart{}
	if err := initializers.DB.Create(&cart).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"id":        cart.ID,
		"createdAt": cart.CreatedAt,
		"items":     []gin.H{},
	})
}

func GetCart(ctx *gin.Context) {
	cartId := ctx.Param("cartId")

	var cart models.Cart
	result := initializers.DB.Preload("Items.Product").First(&cart, "id = ?", cartId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	items := make([]gin.H, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemJSON(item))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":         cart.ID,
		"createdAt":  cart.CreatedAt,
		"items":      items,
		"totalPrice": cart.TotalPrice(),
	})
}

func DeleteCart(ctx *gin.Context) {
	cartId := ctx.Param("cartId")

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartId).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Cart{}, "id = ?", cartId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete cart")
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func CreateCartItem(ctx *gin.Context) {
	cartId := ctx.Param("cartId")

	var input struct {
		ProductID uint `json:"productId" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	item, err := services.AddCartItem(initializers.DB, cartId, input.ProductID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		case errors.Is(err, services.ErrProductNotFound):
			sendErrorResponse(ctx, http.StatusBadRequest, "No product with given id was found!")
		default:
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add cart item")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, cartItemJSON(*item))
}

func GetCartItems(ctx *gin.Context) {
	cartId := ctx.Param("cartId")

	var cart models.Cart
	if err := initializers.DB.First(&cart, "id = ?", cartId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	var cartItems []models.CartItem
	if err := initializers.DB.Preload("Product").Where("cart_id = ?", cartId).Find(&cartItems).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart items")
		return
	}

	items := make([]gin.H, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, cartItemJSON(item))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

func UpdateCartItem(ctx *gin.Context) {
	cartId := ctx.Param("cartId")
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var input struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	item, err := services.UpdateCartItem(initializers.DB, cartId, uint(itemId), input.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, cartItemJSON(*item))
}

func DeleteCartItem(ctx *gin.Context) {
	cartId := ctx.Param("cartId")
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if err := services.RemoveCartItem(initializers.DB, cartId, uint(itemId)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete cart item")
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
