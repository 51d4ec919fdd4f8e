package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GouravKumar19/slooze/entity"
)

// The full role × action matrix from the permission table.
func TestHasPermissionMatrix(t *testing.T) {
	allActions := []Action{
		ViewRestaurants, ViewMenu, CreateOrder, AddItems,
		Checkout, CancelOrder, UpdatePaymentMethod,
	}

	allowed := map[string]map[Action]bool{
		entity.RoleAdmin: {
			ViewRestaurants: true, ViewMenu: true, CreateOrder: true, AddItems: true,
			Checkout: true, CancelOrder: true, UpdatePaymentMethod: true,
		},
		entity.RoleManager: {
			ViewRestaurants: true, ViewMenu: true, CreateOrder: true, AddItems: true,
			Checkout: true, CancelOrder: true, UpdatePaymentMethod: false,
		},
		entity.RoleMember: {
			ViewRestaurants: true, ViewMenu: true, CreateOrder: true, AddItems: true,
			Checkout: false, CancelOrder: false, UpdatePaymentMethod: false,
		},
	}

	for role, actions := range allowed {
		for _, action := range allActions {
			got := HasPermission(role, action)
			assert.Equalf(t, actions[action], got, "role=%s action=%s", role, action)
		}
	}
}

func TestHasPermissionUnknown(t *testing.T) {
	assert.False(t, HasPermission("INTERN", ViewMenu))
	assert.False(t, HasPermission("", Checkout))
	assert.False(t, HasPermission(entity.RoleAdmin, Action("DELETE_EVERYTHING")))
}

func TestPermissions(t *testing.T) {
	assert.Len(t, Permissions(entity.RoleAdmin), 7)
	assert.Len(t, Permissions(entity.RoleManager), 6)
	assert.Len(t, Permissions(entity.RoleMember), 4)
	assert.Nil(t, Permissions("INTERN"))
}

func TestCanAccessCountry(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		userCountry   uint
		targetCountry uint
		want          bool
	}{
		{"admin crosses countries", entity.RoleAdmin, 1, 2, true},
		{"admin same country", entity.RoleAdmin, 1, 1, true},
		{"manager same country", entity.RoleManager, 1, 1, true},
		{"manager other country", entity.RoleManager, 1, 2, false},
		{"member same country", entity.RoleMember, 2, 2, true},
		{"member other country", entity.RoleMember, 2, 1, false},
		{"unknown role same country", "INTERN", 1, 1, true},
		{"unknown role other country", "INTERN", 1, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessCountry(tt.role, tt.userCountry, tt.targetCountry))
		})
	}
}

func TestCanAccessOrder(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		userID       uint
		orderUserID  uint
		userCountry  uint
		orderCountry uint
		want         bool
	}{
		{"admin any order", entity.RoleAdmin, 1, 2, 1, 2, true},
		{"manager same country", entity.RoleManager, 1, 2, 1, 1, true},
		{"manager other country not owner", entity.RoleManager, 1, 2, 1, 2, false},
		{"manager other country but owner", entity.RoleManager, 1, 1, 1, 2, true},
		{"member own order", entity.RoleMember, 3, 3, 1, 1, true},
		{"member other's order same country", entity.RoleMember, 3, 4, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccessOrder(tt.role, tt.userID, tt.orderUserID, tt.userCountry, tt.orderCountry)
			assert.Equal(t, tt.want, got)
		})
	}
}
