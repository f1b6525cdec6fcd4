package database

import (
	"gorm.io/gorm"

	"github.com/dishcovery/backend/internal/models"
)

// AutoMigrate brings the schema up to date for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Bookmark{},
		&models.Recipe{},
		&models.Ingredient{},
	)
}
