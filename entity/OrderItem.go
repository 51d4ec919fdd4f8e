package entity

import (
	"gorm.io/gorm"
)

// One line per (order, menu item); adding the same item again increments
// Quantity instead of inserting a second row. Price is snapshotted at
// add-time so later menu edits don't change submitted orders.
type OrderItem struct {
	gorm.Model
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`

	OrderID uint  `gorm:"uniqueIndex:idx_order_menu_item" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
}
