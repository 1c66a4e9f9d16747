package configs

import (
	"github.com/shinyuna/nuber-eats-back/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{},
		&entity.Dish{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
