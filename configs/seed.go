package configs

import (
	"github.com/shinyuna/nuber-eats-back/entity"

	"gorm.io/gorm"
)

// SeedCategories inserts the default restaurant categories once.
func SeedCategories(db *gorm.DB) error {
	categories := []entity.Category{
		{Name: "Korean", Slug: "korean"},
		{Name: "Chicken", Slug: "chicken"},
		{Name: "Pizza", Slug: "pizza"},
		{Name: "Burger", Slug: "burger"},
		{Name: "Dessert", Slug: "dessert"},
	}
	for _, cat := range categories {
		var cnt int64
		if err := db.Model(&entity.Category{}).Where("slug = ?", cat.Slug).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			continue
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
