package database

import (
	"fmt"

	"foodgram/internal/logging"
	"foodgram/internal/models"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
var Models = []interface{}{
	&models.User{},
	&models.Tag{},
	&models.Ingredient{},
	&models.Recipe{},
	&models.RecipeIngredient{},
	&models.Favorite{},
	&models.ShoppingCartEntry{},
	&models.Subscription{},
	&models.RevokedToken{},
}

func MigrateDatabase(db *gorm.DB) error {
	logging.Info().Msg("Running database migrations...")

	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	logging.Info().Msg("Database migrations completed successfully")
	return nil
}
