package routes

import (
	"github.com/Makena/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/carts", controllers.CreateCart)
	server.GET("/carts/:cartId", controllers.GetCart)
	server.DELETE("/carts/:cartId", controllers.DeleteCart)
	server.POST("/carts/:cartId/items", controllers.CreateCartItem)
	server.GET("/carts/:cartId/items", controllers.GetCartItems)
	server.PATCH("/carts/:cartId/items/:itemId", controllers.UpdateCartItem)
	server.DELETE("/carts/:cartId/items/:itemId", controllers.DeleteCartItem)
}
