package entity

import (
	"gorm.io/gorm"
)

// Country is immutable reference data; it scopes users and restaurants.
type Country struct {
	gorm.Model
	Name string `gorm:"size:100;not null" json:"name"`
	Code string `gorm:"size:2;uniqueIndex;not null" json:"code"`

	Users       []User       `json:"-"`
	Restaurants []Restaurant `json:"-"`
}
