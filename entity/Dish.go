package entity

import (
	"gorm.io/gorm"
)

// DishChoice is one selectable value within an option, e.g. "Large".
// Price is an extra charge in the smallest currency unit; zero means free.
type DishChoice struct {
	Name  string `json:"name"`
	Price int64  `json:"price,omitempty"`
}

// DishOption is a customization axis on a dish, e.g. "Size" or "Toppings".
// Either the option itself carries a flat Price, or individual choices do.
type DishOption struct {
	Name       string       `json:"name"`
	Price      int64        `json:"price,omitempty"`
	Choices    []DishChoice `json:"choices,omitempty"`
	IsRequired bool         `json:"isRequired,omitempty"`
	MinSelect  int          `json:"minSelect,omitempty"`
	MaxSelect  int          `json:"maxSelect,omitempty"`
}

type Dish struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Photo       string `json:"photo"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// stored as a JSON column; orders keep their own snapshot of what
	// was selected, so editing options never touches existing orders
	Options []DishOption `gorm:"serializer:json" json:"options,omitempty"`
}

// Option finds an option by name, case-sensitive.
func (d *Dish) Option(name string) (DishOption, bool) {
	for _, o := range d.Options {
		if o.Name == name {
			return o, true
		}
	}
	return DishOption{}, false
}
