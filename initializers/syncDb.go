package initializers

import (
	"log"

	"github.com/Kariqs/shopcart-api/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistItem{},
	)
}

func SyncDatabase() {
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database synced successfully.")
}
