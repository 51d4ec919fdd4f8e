package entity

import (
	"gorm.io/gorm"
)

// Roles are fixed at creation; there is no self-service role change.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleMember  = "MEMBER"
)

type User struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Role  string `gorm:"not null;default:MEMBER" json:"role"`

	CountryID uint    `json:"countryId"`
	Country   Country `json:"country"`

	// Relations — preload only when needed
	Orders         []Order         `json:"-"`
	PaymentMethods []PaymentMethod `json:"-"`
}
