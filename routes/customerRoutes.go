package routes

import (
	"github.com/Makena/storefront-api/controllers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CustomerRoutes(server *gin.Engine) {
	customers := server.Group("/customers", middlewares.RequireAuth())
	{
		customers.GET("/me", controllers.GetMe)
		customers.PUT("/me", controllers.UpdateMe)
		customers.GET("", middlewares.RequireAdmin(), controllers.GetCustomers)
		customers.GET("/:id", middlewares.RequireAdmin(), controllers.GetCustomer)
		customers.PATCH("/:id/membership", middlewares.RequireAdmin(), controllers.UpdateMembership)
	}
}
