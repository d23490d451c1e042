package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Storefront API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

CATALOG
- GET "/products" - List products (page, limit, search, collection, ordering)
- POST "/products" - Create product (admin)
- GET "/products/:id" - Get product by ID
- PUT "/products/:id" - Update product (admin)
- DELETE "/products/:id" - Delete product (admin, blocked while ordered)
- POST "/products/:id/images" - Upload product images (admin)
- GET "/products/:id/reviews" - List product reviews
- POST "/products/:id/reviews" - Add a review
- GET "/collections" - List collections with product counts
- GET "/promotions" - List promotions

CART
- POST "/carts" - Create a cart
- GET "/carts/:cartId" - Get a cart with totals
- POST "/carts/:cartId/items" - Add an item (quantities aggregate)
- PATCH "/carts/:cartId/items/:itemId" - Change an item quantity
- DELETE "/carts/:cartId/items/:itemId" - Remove an item

ORDERS
- POST "/orders" - Checkout a cart into an order
- GET "/orders" - List orders (own, or all for admins)
- GET "/orders/:orderId" - Get order by ID
- PATCH "/orders/:orderId" - Update payment status (admin)

CUSTOMERS
- GET "/customers/me" - Get own profile
- PUT "/customers/me" - Update own profile`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
