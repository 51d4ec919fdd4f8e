package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`

	IsVegetarian bool `json:"isVegetarian"`
	IsAvailable  bool `gorm:"default:true" json:"isAvailable"`

	RestaurantID uint        `json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"` // serialized only when preloaded

	OrderItems []OrderItem `json:"-"`
}
