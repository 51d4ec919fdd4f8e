package rbac

import (
	"github.com/GouravKumar19/slooze/entity"
)

// Action is something a role may be allowed to do.
type Action string

const (
	ViewRestaurants     Action = "VIEW_RESTAURANTS"
	ViewMenu            Action = "VIEW_MENU"
	CreateOrder         Action = "CREATE_ORDER"
	AddItems            Action = "ADD_ITEMS"
	Checkout            Action = "CHECKOUT"
	CancelOrder         Action = "CANCEL_ORDER"
	UpdatePaymentMethod Action = "UPDATE_PAYMENT_METHOD"
)

// Roles are totally ordered by privilege: ADMIN ⊇ MANAGER ⊇ MEMBER.
var rolePermissions = map[string][]Action{
	entity.RoleAdmin: {
		ViewRestaurants,
		ViewMenu,
		CreateOrder,
		AddItems,
		Checkout,
		CancelOrder,
		UpdatePaymentMethod,
	},
	entity.RoleManager: {
		ViewRestaurants,
		ViewMenu,
		CreateOrder,
		AddItems,
		Checkout,
		CancelOrder,
	},
	entity.RoleMember: {
		ViewRestaurants,
		ViewMenu,
		CreateOrder,
		AddItems,
	},
}

// HasPermission reports whether role may perform action.
// Unknown roles and unknown actions are denied.
func HasPermission(role string, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == action {
			return true
		}
	}
	return false
}

// Permissions returns the allowed action set for a role (nil for unknown roles).
func Permissions(role string) []Action {
	return rolePermissions[role]
}

// CanAccessCountry reports whether a user may see data belonging to
// targetCountryID. Admins see every country; everyone else only their own.
func CanAccessCountry(role string, userCountryID, targetCountryID uint) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return userCountryID == targetCountryID
}

// CanAccessOrder reports whether a user may see a specific order.
// Admins see all orders, managers see orders from their own country,
// members only their own.
func CanAccessOrder(role string, userID, orderUserID, userCountryID, orderCountryID uint) bool {
	if role == entity.RoleAdmin {
		return true
	}
	if role == entity.RoleManager && userCountryID == orderCountryID {
		return true
	}
	return userID == orderUserID
}
