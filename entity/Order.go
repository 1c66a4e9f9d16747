package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerID *uint `json:"customerId"`
	Customer   *User `json:"-"`

	// set once when a delivery claims the order, never reassigned
	DriverID *uint `json:"driverId"`
	Driver   *User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	// frozen at creation time; never recomputed afterwards
	Total int64 `json:"total"`

	Status OrderStatus `gorm:"type:varchar(16);not null;default:Pending" json:"status"`
}
