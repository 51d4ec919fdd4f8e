package entity

import (
	"gorm.io/gorm"
)

// At most one IsDefault=true per user; setting a new default clears the
// previous one in the same transaction.
type PaymentMethod struct {
	gorm.Model
	Type      string `gorm:"not null" json:"type"`
	LastFour  string `gorm:"size:4;not null" json:"lastFour"`
	IsDefault bool   `json:"isDefault"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Orders []Order `json:"-"`
}
