package initializers

import (
	"log"

	"github.com/Makena/storefront-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Address{},
		&models.Collection{},
		&models.Promotion{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Tag{},
		&models.TaggedItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database synced successfully.")
}
