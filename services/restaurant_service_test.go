package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/repository"
)

func restaurantService(f *fixture) *RestaurantService {
	return NewRestaurantService(f.db, repository.NewRestaurantRepository(f.db))
}

func TestRestaurantListScoping(t *testing.T) {
	f := setupFixture(t)
	svc := restaurantService(f)

	all, err := svc.List(claimsFor(f.admin))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inOnly, err := svc.List(claimsFor(f.memberIN))
	require.NoError(t, err)
	require.Len(t, inOnly, 1)
	assert.Equal(t, "Spice Garden", inOnly[0].Name)
	assert.Equal(t, "IN", inOnly[0].Country.Code)
	assert.Equal(t, int64(3), inOnly[0].MenuItemCount)
}

func TestRestaurantDetail(t *testing.T) {
	f := setupFixture(t)
	svc := restaurantService(f)

	// the menu comes back grouped by category, names alphabetical within
	rest, err := svc.Detail(claimsFor(f.memberIN), f.spiceGarden.ID)
	require.NoError(t, err)
	require.Len(t, rest.MenuItems, 3)
	assert.Equal(t, "Garlic Naan", rest.MenuItems[0].Name)
	assert.Equal(t, "Butter Chicken", rest.MenuItems[1].Name)
	assert.Equal(t, "Paneer Tikka", rest.MenuItems[2].Name)

	// hide one item and confirm only available ones come back
	require.NoError(t, f.db.Model(&entity.MenuItem{}).
		Where("id = ?", f.garlicNaan.ID).
		Update("is_available", false).Error)

	rest, err = svc.Detail(claimsFor(f.memberIN), f.spiceGarden.ID)
	require.NoError(t, err)
	require.Len(t, rest.MenuItems, 2)
	assert.Equal(t, "Butter Chicken", rest.MenuItems[0].Name)

	// cross-country member is refused, admin is not
	_, err = svc.Detail(claimsFor(f.memberIN), f.burgerBarn.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Detail(claimsFor(f.admin), f.burgerBarn.ID)
	require.NoError(t, err)

	_, err = svc.Detail(claimsFor(f.admin), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
