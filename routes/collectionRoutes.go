package routes

import (
	"github.com/Makena/storefront-api/controllers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CollectionRoutes(server *gin.Engine) {
	server.GET("/collections", controllers.GetCollections)
	server.GET("/collections/:id", controllers.GetCollection)
	server.GET("/promotions", controllers.GetPromotions)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/collections", controllers.CreateCollection)
		admin.PUT("/collections/:id", controllers.UpdateCollection)
		admin.DELETE("/collections/:id", controllers.DeleteCollection)
		admin.POST("/promotions", controllers.CreatePromotion)
		admin.POST("/promotions/:id/products", controllers.AttachPromotion)
		admin.DELETE("/promotions/:id", controllers.DeletePromotion)
	}
}
