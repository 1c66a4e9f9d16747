package entity

import (
	"gorm.io/gorm"
)

// ItemSelection is the snapshot of one chosen option: the option name
// plus the choice names picked under it. Stored by name, not by id;
// the dish may change later, the order keeps what was actually ordered.
type ItemSelection struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices,omitempty"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	DishName   string          `json:"dishName"`
	Selections []ItemSelection `gorm:"serializer:json" json:"selections,omitempty"`

	// computed once at creation, immutable thereafter
	LinePrice int64 `json:"linePrice"`
}
