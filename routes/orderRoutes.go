package routes

import (
	"github.com/Makena/storefront-api/controllers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetOrders)
		orders.GET("/:orderId", controllers.GetOrderById)
		orders.PATCH("/:orderId", middlewares.RequireAdmin(), controllers.UpdatePaymentStatus)
		orders.DELETE("/:orderId", middlewares.RequireAdmin(), controllers.DeleteOrder)
	}
}
