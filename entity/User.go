package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleDelivery = "delivery"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when the endpoint needs them
	RestaurantsOwned []Restaurant `gorm:"foreignKey:UserID" json:"-"`
	Orders           []Order      `gorm:"foreignKey:CustomerID" json:"-"`
	Rides            []Order      `gorm:"foreignKey:DriverID" json:"-"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleOwner, RoleDelivery:
		return true
	}
	return false
}
