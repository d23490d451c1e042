package routes

import (
	"github.com/Makena/storefront-api/controllers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func TagRoutes(server *gin.Engine) {
	server.GET("/tags", controllers.GetTags)
	server.GET("/tagged/:kind/:entityId", controllers.GetTagsForEntity)

	admin := server.Group("/tags", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateTag)
		admin.DELETE("/:id", controllers.DeleteTag)
		admin.POST("/:id/items", controllers.AttachTag)
		admin.DELETE("/:id/items", controllers.DetachTag)
	}
}
