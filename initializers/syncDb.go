package initializers

import (
	"log"

	"github.com/purebliss/purebliss-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Dessert{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
}
