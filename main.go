package main

import (
	"os"
	"strings"
	"time"

	"github.com/Makena/storefront-api/controllers"
	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/routes"
	"github.com/Makena/storefront-api/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	listeners := []services.OrderListener{
		&services.EmailReceiptListener{
			DB:           initializers.DB,
			TemplatePath: "templates/orderReceipt.html",
		},
	}
	if webhookURL := os.Getenv("ORDER_WEBHOOK_URL"); webhookURL != "" {
		listeners = append(listeners, services.NewWebhookListener(webhookURL))
	}
	controllers.RegisterCheckoutService(services.NewCheckoutService(initializers.DB, listeners...))

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CollectionRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.CustomerRoutes(server)
	routes.TagRoutes(server)

	server.Run()
}
