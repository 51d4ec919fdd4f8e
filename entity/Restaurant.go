package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`

	CountryID uint    `json:"countryId"`
	Country   Country `json:"country"`

	MenuItems []MenuItem `json:"menuItems,omitempty"`
}
