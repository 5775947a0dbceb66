package initializers

import (
	"github.com/shopnest/api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
	)
}
