package entity

import (
	"gorm.io/gorm"
)

// Order statuses. A DRAFT order is the user's cart (at most one per user).
// PENDING and DELIVERED exist for externally driven fulfillment flows; no
// handler here transitions into them.
const (
	OrderDraft     = "DRAFT"
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCancelled = "CANCELLED"
	OrderDelivered = "DELIVERED"
)

type Order struct {
	gorm.Model
	Status string  `gorm:"not null;default:DRAFT" json:"status"`
	Total  float64 `json:"total"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload for order detail / country scoping

	PaymentMethodID *uint          `json:"paymentMethodId,omitempty"`
	PaymentMethod   *PaymentMethod `json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
