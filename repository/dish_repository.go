package repository

import (
	"github.com/shinyuna/nuber-eats-back/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Save(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}

// FindByID loads the dish including its options/choices JSON.
func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) ListByRestaurant(restID uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("restaurant_id = ?", restID).Order("id").Find(&out).Error
	return out, err
}
