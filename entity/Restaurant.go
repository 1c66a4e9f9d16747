package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Address  string `json:"address"`
	CoverImg string `json:"coverImg"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Menu   []Dish  `gorm:"foreignKey:RestaurantID" json:"-"`
	Orders []Order `json:"-"`
}
