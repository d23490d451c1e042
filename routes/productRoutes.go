package routes

import (
	"github.com/Makena/storefront-api/controllers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)
	server.GET("/products/:id/images", controllers.GetProductImages)
	server.GET("/products/:id/reviews", controllers.GetReviews)
	server.POST("/products/:id/reviews", controllers.CreateReview)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/images", controllers.UploadProductImages)
	}
}
